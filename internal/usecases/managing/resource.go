package managing

import (
	"context"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Resource é a tela de listagem de um recurso com o tipo apagado, para que os
// handlers tratem todos os recursos da mesma forma
type Resource interface {
	Name() string
	Filters() []string
	Page(ctx context.Context, state listing.FilterState) any
	Stats(ctx context.Context) any
	Create(ctx context.Context, in Input, state listing.FilterState) (*Result, error)
	Update(ctx context.Context, key string, in Input, state listing.FilterState) (*Result, error)
	Delete(ctx context.Context, key string, state listing.FilterState) (*Result, error)
	Transition(ctx context.Context, key, status string, state listing.FilterState) (*Result, error)
	ItemAction(ctx context.Context, key, verb string, in Input, state listing.FilterState) (*Result, error)
	CollectionAction(ctx context.Context, verb string, in Input, state listing.FilterState) (*Result, error)
}

// Result é a resposta de uma mutação: o item afetado (quando houver), o corpo
// devolvido por ações e a tela já reconciliada
type Result struct {
	Item   any `json:"item,omitempty"`
	Detail any `json:"result,omitempty"`
	Page   any `json:"page"`
}

type formFactory func(in Input) (listing.Form, error)

func noPayload(Input) (listing.Form, error) {
	return listing.NoPayload{}, nil
}

// statusTransition descreve como o status de um recurso é alterado
type statusTransition struct {
	field   string
	allowed []string
	encode  func(status string) any
}

type resource[T listing.Item, S any] struct {
	client            blogclient.Client
	def               listing.Definition[T, S]
	create            formFactory
	update            formFactory
	deletable         bool
	status            *statusTransition
	itemActions       map[string]formFactory
	collectionActions map[string]formFactory
}

func (r *resource[T, S]) Name() string {
	return r.def.Resource
}

func (r *resource[T, S]) Filters() []string {
	names := r.def.Filter.Names()
	sort.Strings(names)
	return names
}

// controller cria o estado da tela para esta requisição
func (r *resource[T, S]) controller() *listing.Controller[T, S] {
	return listing.NewController(r.client, r.def)
}

func (r *resource[T, S]) Page(ctx context.Context, state listing.FilterState) any {
	ctrl := r.controller()
	ctrl.Load(ctx)
	return ctrl.Page(state)
}

func (r *resource[T, S]) Stats(ctx context.Context) any {
	ctrl := r.controller()
	ctrl.Load(ctx)
	return ctrl.Stats()
}

// buildForm decodifica e valida o formulário antes de qualquer requisição
func (r *resource[T, S]) buildForm(factory formFactory, in Input) (listing.Form, error) {
	form, err := factory(in)
	if err != nil {
		return nil, invalidInput(r.def.Resource, err)
	}
	if errs := form.Validate(); !errs.IsEmpty() {
		return nil, listing.NewValidationError(r.def.Resource, errs)
	}
	return form, nil
}

func (r *resource[T, S]) Create(ctx context.Context, in Input, state listing.FilterState) (*Result, error) {
	if r.create == nil {
		return nil, unsupported(r.def.Resource, "create")
	}

	form, err := r.buildForm(r.create, in)
	if err != nil {
		return nil, err
	}

	ctrl := r.controller()
	item, err := ctrl.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	return &Result{Item: itemOrNil(item), Page: ctrl.Page(state)}, nil
}

func (r *resource[T, S]) Update(ctx context.Context, key string, in Input, state listing.FilterState) (*Result, error) {
	if r.update == nil {
		return nil, unsupported(r.def.Resource, "update")
	}

	form, err := r.buildForm(r.update, in)
	if err != nil {
		return nil, err
	}

	ctrl := r.controller()
	ctrl.Load(ctx)

	item, err := ctrl.Update(ctx, key, form)
	if err != nil {
		return nil, err
	}

	return &Result{Item: itemOrNil(item), Page: ctrl.Page(state)}, nil
}

func (r *resource[T, S]) Delete(ctx context.Context, key string, state listing.FilterState) (*Result, error) {
	if !r.deletable {
		return nil, unsupported(r.def.Resource, "delete")
	}

	ctrl := r.controller()
	ctrl.Load(ctx)

	if err := ctrl.Delete(ctx, key); err != nil {
		return nil, err
	}

	return &Result{Page: ctrl.Page(state)}, nil
}

func (r *resource[T, S]) Transition(ctx context.Context, key, status string, state listing.FilterState) (*Result, error) {
	if r.status == nil {
		return nil, unsupported(r.def.Resource, "status")
	}

	form, err := r.buildForm(func(Input) (listing.Form, error) {
		return &StatusForm{transition: r.status, Status: status}, nil
	}, Input{})
	if err != nil {
		return nil, err
	}

	ctrl := r.controller()
	ctrl.Load(ctx)

	item, err := ctrl.Transition(ctx, key, form)
	if err != nil {
		return nil, err
	}

	return &Result{Item: itemOrNil(item), Page: ctrl.Page(state)}, nil
}

func (r *resource[T, S]) ItemAction(ctx context.Context, key, verb string, in Input, state listing.FilterState) (*Result, error) {
	factory, ok := r.itemActions[verb]
	if !ok {
		return nil, unsupported(r.def.Resource, verb)
	}

	form, err := r.buildForm(factory, in)
	if err != nil {
		return nil, err
	}

	ctrl := r.controller()
	ctrl.Load(ctx)

	data, item, err := ctrl.ItemAction(ctx, key, verb, form)
	if err != nil {
		return nil, err
	}

	return &Result{Item: itemOrNil(item), Detail: decodeDetail(data), Page: ctrl.Page(state)}, nil
}

func (r *resource[T, S]) CollectionAction(ctx context.Context, verb string, in Input, state listing.FilterState) (*Result, error) {
	factory, ok := r.collectionActions[verb]
	if !ok {
		return nil, unsupported(r.def.Resource, verb)
	}

	form, err := r.buildForm(factory, in)
	if err != nil {
		return nil, err
	}

	ctrl := r.controller()

	data, err := ctrl.CollectionAction(ctx, verb, form)
	if err != nil {
		return nil, err
	}

	return &Result{Detail: decodeDetail(data), Page: ctrl.Page(state)}, nil
}

func itemOrNil[T any](item *T) any {
	if item == nil {
		return nil
	}
	return *item
}

func decodeDetail(data []byte) any {
	if len(data) == 0 {
		return nil
	}

	var detail any
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil
	}
	return detail
}

// StatusForm é o formulário da transição de status
type StatusForm struct {
	transition *statusTransition
	Status     string
}

func (f *StatusForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("status", f.Status)
	errs.OneOf("status", f.Status, f.transition.allowed)
	return errs
}

func (f *StatusForm) Payload() blogclient.Payload {
	var value any = f.Status
	if f.transition.encode != nil {
		value = f.transition.encode(f.Status)
	}
	return blogclient.Payload{Fields: map[string]any{f.transition.field: value}}
}
