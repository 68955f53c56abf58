package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var inContext string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inContext = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("propaga o ID recebido", func(t *testing.T) {
		received := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/v1/overview", nil)
		req.Header.Set(CorrelationIDHeader, received)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, received, rec.Header().Get(CorrelationIDHeader))
		assert.Equal(t, received, inContext)
	})

	t.Run("gera um ID novo", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/overview", nil))

		assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
		assert.Equal(t, rec.Header().Get(CorrelationIDHeader), inContext)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/tags", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
