package listing

import (
	"bytes"
	"context"
	"net/url"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Definition é tudo o que um recurso precisa informar para ter uma tela de
// listagem: endpoint, filtros e agregados.
type Definition[T Item, S any] struct {
	Resource string
	Query    url.Values
	Filter   FilterSpec[T]
	Stats    Reducer[T, S]
}

// Page é a foto da tela: visão filtrada, agregados da lista completa e totais
type Page[T any, S any] struct {
	Items    []T         `json:"items"`
	Stats    S           `json:"stats"`
	Total    int         `json:"total"`
	Filtered int         `json:"filtered"`
	Filters  FilterState `json:"filters"`
}

// Controller guarda o estado de uma tela durante a vida dela. A lista local só
// muda depois que a API confirma a operação.
type Controller[T Item, S any] struct {
	mu         sync.RWMutex
	def        Definition[T, S]
	fetcher    Fetcher[T]
	dispatcher Dispatcher
	items      []T
}

func NewController[T Item, S any](client blogclient.Client, def Definition[T, S]) *Controller[T, S] {
	return &Controller[T, S]{
		def:        def,
		fetcher:    NewFetcher[T](client, def.Resource, def.Query),
		dispatcher: NewDispatcher(client, def.Resource),
		items:      []T{},
	}
}

func (c *Controller[T, S]) Resource() string {
	return c.def.Resource
}

// Load busca a coleção e substitui a lista local. Quando duas cargas correm
// juntas, vale a que terminar por último.
func (c *Controller[T, S]) Load(ctx context.Context) []T {
	items := c.fetcher.Fetch(ctx)

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return c.Items()
}

// Items devolve uma cópia da lista completa
func (c *Controller[T, S]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Stats calcula os agregados sobre a lista completa, nunca sobre a visão
func (c *Controller[T, S]) Stats() S {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.def.Stats(c.items)
}

func (c *Controller[T, S]) Page(state FilterState) Page[T, S] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view := c.def.Filter.Apply(c.items, state)

	return Page[T, S]{
		Items:    view,
		Stats:    c.def.Stats(c.items),
		Total:    len(c.items),
		Filtered: len(view),
		Filters:  state,
	}
}

// Create envia o formulário e recarrega a coleção inteira. Devolve o item
// criado quando a resposta o contém.
func (c *Controller[T, S]) Create(ctx context.Context, form Form) (*T, error) {
	data, err := c.dispatcher.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	c.Load(ctx)

	return decodeItem[T](data), nil
}

// Update envia o formulário e mescla a resposta pela chave
func (c *Controller[T, S]) Update(ctx context.Context, key string, form Form) (*T, error) {
	data, err := c.dispatcher.Update(ctx, key, form)
	if err != nil {
		return nil, err
	}

	return c.reconcile(ctx, data), nil
}

// Transition muda o status do item. É um Update cujo formulário só carrega o
// campo de status.
func (c *Controller[T, S]) Transition(ctx context.Context, key string, form Form) (*T, error) {
	return c.Update(ctx, key, form)
}

// ItemAction executa uma ação no item e reconcilia como um Update
func (c *Controller[T, S]) ItemAction(ctx context.Context, key, verb string, form Form) ([]byte, *T, error) {
	data, err := c.dispatcher.ItemAction(ctx, key, verb, form)
	if err != nil {
		return nil, nil, err
	}

	return data, c.reconcile(ctx, data), nil
}

// CollectionAction executa uma ação na coleção e recarrega a lista
func (c *Controller[T, S]) CollectionAction(ctx context.Context, verb string, form Form) ([]byte, error) {
	data, err := c.dispatcher.CollectionAction(ctx, verb, form)
	if err != nil {
		return nil, err
	}

	c.Load(ctx)

	return data, nil
}

// Delete remove o item na API e, só depois da confirmação, da lista local
func (c *Controller[T, S]) Delete(ctx context.Context, key string) error {
	if err := c.dispatcher.Delete(ctx, key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	c.items = kept

	return nil
}

// reconcile mescla o item devolvido pela API. Sem item reconhecível na
// resposta, ou com chave fora da lista, recarrega a coleção.
func (c *Controller[T, S]) reconcile(ctx context.Context, data []byte) *T {
	item := decodeItem[T](data)
	if item == nil {
		log.ForResource(ctx, c.def.Resource).Debug("Resposta sem item, recarregando a coleção")
		c.Load(ctx)
		return nil
	}

	if c.merge(*item) {
		return item
	}

	c.Load(ctx)
	return item
}

func (c *Controller[T, S]) merge(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items[i] = item
			return true
		}
	}
	return false
}

func decodeItem[T Item](data []byte) *T {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil
	}
	if item.Key() == "" {
		return nil
	}
	return &item
}
