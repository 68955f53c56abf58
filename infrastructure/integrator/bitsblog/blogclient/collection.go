package blogclient

import (
	"context"
	"net/http"
	"net/url"
)

// List faz um único GET na coleção e devolve o corpo bruto. A normalização
// entre envelope paginado e array fica a cargo de blogdomain.DecodeCollection.
func (c *BlogClient) List(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	target, err := c.endpoint(query, resource)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodGet, target, nil, "")
}
