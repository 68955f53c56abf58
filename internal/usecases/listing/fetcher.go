package listing

import (
	"context"
	"net/url"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

// Fetcher busca a coleção completa de um recurso. Cada chamada faz um único
// GET; não existe cache nem polling.
type Fetcher[T any] struct {
	client   blogclient.Client
	resource string
	query    url.Values
}

func NewFetcher[T any](client blogclient.Client, resource string, query url.Values) Fetcher[T] {
	return Fetcher[T]{
		client:   client,
		resource: resource,
		query:    query,
	}
}

// Fetch devolve os itens do recurso. Falhas de transporte ou de parse são
// logadas e resultam em lista vazia; o erro nunca sobe para a tela.
func (f Fetcher[T]) Fetch(ctx context.Context) []T {
	logger := log.ForResource(ctx, f.resource)

	data, err := f.client.List(ctx, f.resource, f.query)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar a coleção")
		return []T{}
	}

	items, shape, err := blogdomain.DecodeCollection[T](data)
	if err != nil {
		logger.WithError(err).Error("Erro ao decodificar a coleção")
		return []T{}
	}

	if shape == blogdomain.ShapeUnknown {
		logger.Warn("Formato de resposta desconhecido, usando lista vazia")
	}

	logger.Debugf("Coleção carregada (%s) com %d itens", shape, len(items))

	return items
}
