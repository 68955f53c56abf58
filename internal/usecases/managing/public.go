package managing

import (
	"context"
	"regexp"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

const resourceNewsletter = "newsletter"

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// PublicService atende os widgets públicos do blog (newsletter e contato),
// que não passam pela guarda de staff
type PublicService interface {
	Subscribe(ctx context.Context, in Input) (any, error)
	Verify(ctx context.Context, token string) (any, error)
	Unsubscribe(ctx context.Context, token string) (any, error)
	Contact(ctx context.Context, in Input) (any, error)
}

type Public struct {
	newsletter listing.Dispatcher
	contact    listing.Dispatcher
}

func NewPublicService(client blogclient.Client) PublicService {
	return &Public{
		newsletter: listing.NewDispatcher(client, resourceNewsletter),
		contact:    listing.NewDispatcher(client, ResourceContactMessages),
	}
}

// SubscribeForm é o formulário de inscrição na newsletter
type SubscribeForm struct {
	Email string `form:"email"`
	Name  string `form:"name"`
}

func (f *SubscribeForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("email", f.Email)
	errs.Email("email", f.Email)
	return errs
}

func (f *SubscribeForm) Payload() blogclient.Payload {
	fields := map[string]any{"email": f.Email}
	setIfPresent(fields, "name", f.Name)
	return blogclient.Payload{Fields: fields}
}

func (p *Public) Subscribe(ctx context.Context, in Input) (any, error) {
	form := &SubscribeForm{}
	if err := decodeForm(in, form); err != nil {
		return nil, invalidInput(resourceNewsletter, err)
	}

	data, err := p.newsletter.CollectionAction(ctx, "subscribe", form)
	if err != nil {
		return nil, err
	}

	return decodeDetail(data), nil
}

func (p *Public) Verify(ctx context.Context, token string) (any, error) {
	return p.tokenAction(ctx, "verify", token)
}

func (p *Public) Unsubscribe(ctx context.Context, token string) (any, error) {
	return p.tokenAction(ctx, "unsubscribe", token)
}

// tokenAction chama /api/newsletter/<verbo>/<token>/
func (p *Public) tokenAction(ctx context.Context, verb, token string) (any, error) {
	if !tokenPattern.MatchString(token) {
		return nil, &listing.MutationError{
			Err:      ErrInvalidInput,
			Code:     apiErrors.ErrInvalidFormat,
			Resource: resourceNewsletter,
			Details:  "token inválido",
		}
	}

	data, err := p.newsletter.CollectionAction(ctx, verb+"/"+token, listing.NoPayload{})
	if err != nil {
		return nil, err
	}

	return decodeDetail(data), nil
}

func (p *Public) Contact(ctx context.Context, in Input) (any, error) {
	form, err := newContactForm(in)
	if err != nil {
		return nil, invalidInput(ResourceContactMessages, err)
	}

	data, err := p.contact.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	return decodeDetail(data), nil
}
