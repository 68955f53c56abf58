package blogclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/internal/config"
)

type Client interface {
	List(ctx context.Context, resource string, query url.Values) ([]byte, error)
	Create(ctx context.Context, resource string, payload Payload) ([]byte, error)
	Update(ctx context.Context, resource, key string, payload Payload) ([]byte, error)
	Delete(ctx context.Context, resource, key string) error
	ItemAction(ctx context.Context, resource, key, verb string, payload Payload) ([]byte, error)
	CollectionAction(ctx context.Context, resource, verb string, payload Payload) ([]byte, error)
	CurrentUser(ctx context.Context) (*blogdomain.CurrentUser, error)
}

type BlogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API REST do blog
func NewClient(cfg *config.Config) Client {
	return &BlogClient{
		httpClient: &http.Client{
			Timeout: cfg.BitsBlog.Timeout,
		},
		baseURL: cfg.BitsBlog.URL,
	}
}

type tokenKey struct{}

// WithToken guarda no contexto o token da sessão que será repassado à API
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext devolve o token da sessão guardado no contexto
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
