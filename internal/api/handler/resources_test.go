package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/mocks"
	"github.com/vfg2006/bitsblog-admin/internal/api/handler/router"
	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/authorizing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const adsJSON = `[
	{"id": 1, "title": "Curso de Go", "status": "active", "placement": "header", "ad_type": "image", "impressions": 1000, "clicks": 50},
	{"id": 2, "title": "Livro de Go", "status": "paused", "placement": "sidebar", "ad_type": "text", "impressions": 1000, "clicks": 50},
	{"id": 3, "title": "Popup", "status": "active", "placement": "popup", "ad_type": "html"}
]`

type staffResolver struct{}

func (staffResolver) Resolve(context.Context, string) (*domain.Session, error) {
	isStaff := true
	return &domain.Session{UserID: 1, Username: "admin", IsStaff: &isStaff}, nil
}

type anonymousResolver struct{}

func (anonymousResolver) Resolve(context.Context, string) (*domain.Session, error) {
	return nil, authorizing.NewAuthError(authorizing.ErrMissingToken, apiErrors.ErrUnauthenticated, "")
}

func newTestRouter(t *testing.T, resolver authorizing.SessionResolver) (http.Handler, *mocks.MockClient) {
	client := mocks.NewMockClient(gomock.NewController(t))

	cfg := &config.Config{Upload: config.Upload{MaxBytes: 1024}}
	guard := authorizing.NewGuard(resolver, "/blog")
	handlers := NewResourceHandlers(managing.NewService(client, cfg), cfg)

	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Admin(handlers, guard)...),
		router.WithRoutes(Public(managing.NewPublicService(client))...),
	), client
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantFiltered float64
	}{
		{name: "sem filtros", query: "", wantFiltered: 3},
		{name: "status active", query: "?status=active", wantFiltered: 2},
		{name: "status all", query: "?status=all&placement=all", wantFiltered: 3},
		{name: "busca e filtro", query: "?search=GO&placement=sidebar", wantFiltered: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, client := newTestRouter(t, staffResolver{})
			client.EXPECT().List(gomock.Any(), "advertisements", gomock.Any()).Return([]byte(adsJSON), nil)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/advertisements"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantFiltered, body["filtered"])
			assert.Equal(t, float64(3), body["total"])

			stats := body["stats"].(map[string]any)
			assert.Equal(t, float64(3), stats["total"])
			assert.Equal(t, 5.0, stats["average_ctr"])

			items := body["items"].([]any)
			require.NotEmpty(t, items)
			assert.Equal(t, 5.0, items[0].(map[string]any)["ctr"])
		})
	}
}

func TestList_RecursoDesconhecido(t *testing.T) {
	r, _ := newTestRouter(t, staffResolver{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/posts", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeBody(t, rec)["code"])
}

func TestList_SemStaffRedireciona(t *testing.T) {
	r, _ := newTestRouter(t, anonymousResolver{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/advertisements", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/blog", rec.Header().Get("Location"))
}

func TestCreate_ValidacaoLocal(t *testing.T) {
	r, _ := newTestRouter(t, staffResolver{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/advertisements",
		bytes.NewBufferString(`{"title": "Sem link", "placement": "header", "ad_type": "image", "link_url": "nada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, apiErrors.ErrFieldValidation, body["code"])
	assert.Contains(t, body["details"], "link_url")
}

func TestCreate_MultipartComImagemGrande(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "acima do limite de upload", content: make([]byte, 2048)},
		{name: "acima do limite do corpo", content: make([]byte, 2<<20)},
		{name: "acima do limite do corpo com quebras de linha", content: bytes.Repeat([]byte("ab\r\n"), 1<<19)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, staffResolver{})

			buf := &bytes.Buffer{}
			writer := multipart.NewWriter(buf)
			for field, value := range map[string]string{
				"title":     "Banner",
				"link_url":  "https://bitsblog.dev",
				"placement": "header",
				"ad_type":   "image",
			} {
				require.NoError(t, writer.WriteField(field, value))
			}
			part, err := writer.CreateFormFile("image", "banner.png")
			require.NoError(t, err)
			png := append([]byte("\x89PNG\r\n\x1a\n"), tt.content...)
			_, err = part.Write(png)
			require.NoError(t, err)
			require.NoError(t, writer.Close())

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/advertisements", buf)
			req.Header.Set("Content-Type", writer.FormDataContentType())
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, apiErrors.ErrFieldValidation, body["code"])
			details, ok := body["details"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "O arquivo deve ter no máximo 1 KB.", details["image"])
		})
	}
}

func TestCreate_Sucesso(t *testing.T) {
	r, client := newTestRouter(t, staffResolver{})

	gomock.InOrder(
		client.EXPECT().Create(gomock.Any(), "tags", gomock.Any()).Return([]byte(`{"id": 5, "name": "Go", "slug": "go"}`), nil),
		client.EXPECT().List(gomock.Any(), "tags", gomock.Any()).Return([]byte(`[{"id": 5, "name": "Go", "slug": "go"}]`), nil),
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/tags", bytes.NewBufferString(`{"name": "Go"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "go", body["item"].(map[string]any)["slug"])
	assert.Equal(t, float64(1), body["page"].(map[string]any)["total"])
}

func TestDelete_FalhaDeComunicacao(t *testing.T) {
	r, client := newTestRouter(t, staffResolver{})

	client.EXPECT().List(gomock.Any(), "advertisements", gomock.Any()).Return([]byte(adsJSON), nil)
	client.EXPECT().Delete(gomock.Any(), "advertisements", "99").Return(errors.New("connection reset"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/admin/advertisements/99", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrCommunication, decodeBody(t, rec)["code"])
}

func TestTransition_NaoSuportada(t *testing.T) {
	r, _ := newTestRouter(t, staffResolver{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/tags/go/status", bytes.NewBufferString(`{"status": "active"}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrNotSupported, decodeBody(t, rec)["code"])
}

func TestCollectionAction_ExpireOld(t *testing.T) {
	r, client := newTestRouter(t, staffResolver{})

	gomock.InOrder(
		client.EXPECT().CollectionAction(gomock.Any(), "advertisements", "expire_old", gomock.Any()).
			Return([]byte(`{"expired_count": 2}`), nil),
		client.EXPECT().List(gomock.Any(), "advertisements", gomock.Any()).Return([]byte(adsJSON), nil),
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/actions/advertisements/expire_old", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["result"].(map[string]any)["expired_count"])
}

func TestPublic_VerifyTokenInvalido(t *testing.T) {
	r, _ := newTestRouter(t, anonymousResolver{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/newsletter/verify/abc%20def", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeBody(t, rec)["code"])
}

func TestHealthcheck(t *testing.T) {
	r, _ := newTestRouter(t, anonymousResolver{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
