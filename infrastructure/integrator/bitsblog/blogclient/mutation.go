package blogclient

import (
	"context"
	"net/http"
)

func (c *BlogClient) send(ctx context.Context, method string, payload Payload, segments ...string) ([]byte, error) {
	target, err := c.endpoint(nil, segments...)
	if err != nil {
		return nil, err
	}

	body, contentType, err := payload.encode()
	if err != nil {
		return nil, err
	}

	return c.do(ctx, method, target, body, contentType)
}

// Create envia POST /api/<resource>/
func (c *BlogClient) Create(ctx context.Context, resource string, payload Payload) ([]byte, error) {
	return c.send(ctx, http.MethodPost, payload, resource)
}

// Update envia PATCH /api/<resource>/<key>/
func (c *BlogClient) Update(ctx context.Context, resource, key string, payload Payload) ([]byte, error) {
	return c.send(ctx, http.MethodPatch, payload, resource, key)
}

// Delete envia DELETE /api/<resource>/<key>/
func (c *BlogClient) Delete(ctx context.Context, resource, key string) error {
	_, err := c.send(ctx, http.MethodDelete, Payload{}, resource, key)
	return err
}

// ItemAction envia POST /api/<resource>/<key>/<verb>/
func (c *BlogClient) ItemAction(ctx context.Context, resource, key, verb string, payload Payload) ([]byte, error) {
	return c.send(ctx, http.MethodPost, payload, resource, key, verb)
}

// CollectionAction envia POST /api/<resource>/<verb>/
func (c *BlogClient) CollectionAction(ctx context.Context, resource, verb string, payload Payload) ([]byte, error) {
	return c.send(ctx, http.MethodPost, payload, resource, verb)
}
