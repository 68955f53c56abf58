package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

type publicResponse struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

func readPublicInput(w http.ResponseWriter, r *http.Request) (managing.Input, bool) {
	in, err := readInput(w, r, 0)
	if errors.Is(err, listing.ErrValidation) {
		writeError(w, r, err, "Corpo da requisição inválido")
		return in, false
	}
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return in, false
	}
	return in, true
}

func Subscribe(service managing.PublicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, ok := readPublicInput(w, r)
		if !ok {
			return
		}

		result, err := service.Subscribe(r.Context(), in)
		if err != nil {
			writeError(w, r, err, "Erro ao inscrever na newsletter")
			return
		}

		writeJSON(w, http.StatusCreated, publicResponse{Message: "Inscrição realizada. Confirme pelo e-mail enviado.", Result: result})
	})
}

func VerifySubscription(service managing.PublicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Verify(r.Context(), param(r, "token"))
		if err != nil {
			writeError(w, r, err, "Erro ao confirmar inscrição")
			return
		}

		writeJSON(w, http.StatusOK, publicResponse{Message: "Inscrição confirmada.", Result: result})
	})
}

func Unsubscribe(service managing.PublicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Unsubscribe(r.Context(), param(r, "token"))
		if err != nil {
			writeError(w, r, err, "Erro ao cancelar inscrição")
			return
		}

		writeJSON(w, http.StatusOK, publicResponse{Message: "Inscrição cancelada.", Result: result})
	})
}

func SendContactMessage(service managing.PublicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, ok := readPublicInput(w, r)
		if !ok {
			return
		}

		result, err := service.Contact(r.Context(), in)
		if err != nil {
			writeError(w, r, err, "Erro ao enviar mensagem")
			return
		}

		writeJSON(w, http.StatusCreated, publicResponse{Message: "Mensagem enviada.", Result: result})
	})
}
