package blogclient

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
)

// ResponseError é devolvido quando a API responde com status fora da faixa 2xx
type ResponseError struct {
	StatusCode int
	Method     string
	Path       string
	Body       *blogdomain.ErrorResponse
}

func (e *ResponseError) Error() string {
	if msg := e.Body.Message(); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound indica se a API respondeu 404
func (e *ResponseError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized indica se a sessão foi recusada pela API
func (e *ResponseError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsValidation indica se a API recusou os dados enviados (400 ou 422)
func (e *ResponseError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

// FieldErrors devolve os erros por campo de uma resposta de validação.
// Corpos de 401, 404 ou 5xx nunca são tratados como erros por campo.
func (e *ResponseError) FieldErrors() map[string]string {
	if !e.IsValidation() || !e.Body.HasFieldErrors() {
		return nil
	}
	return e.Body.Fields
}
