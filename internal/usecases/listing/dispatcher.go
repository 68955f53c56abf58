package listing

import (
	"context"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

// Dispatcher envia as mutações de um recurso. A validação local roda antes de
// qualquer requisição; não há retry nem rollback.
type Dispatcher struct {
	client   blogclient.Client
	resource string
}

func NewDispatcher(client blogclient.Client, resource string) Dispatcher {
	return Dispatcher{
		client:   client,
		resource: resource,
	}
}

func (d Dispatcher) validate(form Form) error {
	if form == nil {
		return nil
	}
	if errs := form.Validate(); !errs.IsEmpty() {
		return NewValidationError(d.resource, errs)
	}
	return nil
}

func payloadOf(form Form) blogclient.Payload {
	if form == nil {
		return blogclient.Payload{}
	}
	return form.Payload()
}

// Create envia POST na coleção
func (d Dispatcher) Create(ctx context.Context, form Form) ([]byte, error) {
	if err := d.validate(form); err != nil {
		return nil, err
	}

	data, err := d.client.Create(ctx, d.resource, payloadOf(form))
	if err != nil {
		return nil, d.failed(ctx, "create", "", err)
	}

	return data, nil
}

// Update envia PATCH no item
func (d Dispatcher) Update(ctx context.Context, key string, form Form) ([]byte, error) {
	if err := d.validate(form); err != nil {
		return nil, err
	}

	data, err := d.client.Update(ctx, d.resource, key, payloadOf(form))
	if err != nil {
		return nil, d.failed(ctx, "update", key, err)
	}

	return data, nil
}

// Delete remove o item
func (d Dispatcher) Delete(ctx context.Context, key string) error {
	if err := d.client.Delete(ctx, d.resource, key); err != nil {
		return d.failed(ctx, "delete", key, err)
	}
	return nil
}

// ItemAction envia POST em /<recurso>/<chave>/<verbo>/
func (d Dispatcher) ItemAction(ctx context.Context, key, verb string, form Form) ([]byte, error) {
	if err := d.validate(form); err != nil {
		return nil, err
	}

	data, err := d.client.ItemAction(ctx, d.resource, key, verb, payloadOf(form))
	if err != nil {
		return nil, d.failed(ctx, verb, key, err)
	}

	return data, nil
}

// CollectionAction envia POST em /<recurso>/<verbo>/
func (d Dispatcher) CollectionAction(ctx context.Context, verb string, form Form) ([]byte, error) {
	if err := d.validate(form); err != nil {
		return nil, err
	}

	data, err := d.client.CollectionAction(ctx, d.resource, verb, payloadOf(form))
	if err != nil {
		return nil, d.failed(ctx, verb, "", err)
	}

	return data, nil
}

func (d Dispatcher) failed(ctx context.Context, op, key string, err error) error {
	mErr := translateRemoteError(d.resource, key, err)

	log.ForResource(ctx, d.resource).WithFields(log.Fields{
		"key":       key,
		"operation": op,
	}).WithError(err).Error("Erro ao executar a mutação")

	return mErr
}
