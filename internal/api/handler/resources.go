package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

// ResourceHandlers agrupa as dependências das rotas de recursos do painel
type ResourceHandlers struct {
	service  managing.AdminService
	maxBytes int64
}

func NewResourceHandlers(service managing.AdminService, cfg *config.Config) ResourceHandlers {
	return ResourceHandlers{
		service:  service,
		maxBytes: cfg.Upload.MaxBytes,
	}
}

// lookup resolve o recurso da URL ou escreve 404
func (h ResourceHandlers) lookup(w http.ResponseWriter, r *http.Request) (managing.Resource, bool) {
	resource, err := h.service.Resource(param(r, "resource"))
	if err != nil {
		writeError(w, r, err, "Recurso desconhecido")
		return nil, false
	}
	return resource, true
}

func (h ResourceHandlers) input(w http.ResponseWriter, r *http.Request) (managing.Input, bool) {
	in, err := readInput(w, r, h.maxBytes)
	if errors.Is(err, listing.ErrValidation) {
		writeError(w, r, err, "Corpo da requisição inválido")
		return in, false
	}
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return in, false
	}
	return in, true
}

// List busca a coleção, calcula os agregados e aplica os filtros da query
func (h ResourceHandlers) List() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, resource.Page(r.Context(), filterState(r, resource)))
	})
}

func (h ResourceHandlers) Create() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}
		in, ok := h.input(w, r)
		if !ok {
			return
		}

		result, err := resource.Create(r.Context(), in, filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao criar item")
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}

func (h ResourceHandlers) Update() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}
		in, ok := h.input(w, r)
		if !ok {
			return
		}

		result, err := resource.Update(r.Context(), param(r, "key"), in, filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar item")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func (h ResourceHandlers) Delete() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}

		result, err := resource.Delete(r.Context(), param(r, "key"), filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao remover item")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h ResourceHandlers) Transition() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}

		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := resource.Transition(r.Context(), param(r, "key"), req.Status, filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao alterar status")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func (h ResourceHandlers) ItemAction() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}
		in, ok := h.input(w, r)
		if !ok {
			return
		}

		result, err := resource.ItemAction(r.Context(), param(r, "key"), param(r, "verb"), in, filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao executar ação")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func (h ResourceHandlers) CollectionAction() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, ok := h.lookup(w, r)
		if !ok {
			return
		}
		in, ok := h.input(w, r)
		if !ok {
			return
		}

		result, err := resource.CollectionAction(r.Context(), param(r, "verb"), in, filterState(r, resource))
		if err != nil {
			writeError(w, r, err, "Erro ao executar ação")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// Overview devolve os agregados de todos os recursos
func (h ResourceHandlers) Overview() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.service.Overview(r.Context()))
	})
}
