package managing

import (
	"net/url"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
)

const ResourceContactMessages = "contact-messages"

// VerbMarkResolved marca a mensagem como resolvida
const VerbMarkResolved = "mark_resolved"

func contactMessageDefinition() listing.Definition[domain.ContactMessage, domain.ContactMessageStats] {
	return listing.Definition[domain.ContactMessage, domain.ContactMessageStats]{
		Resource: ResourceContactMessages,
		Query:    url.Values{"ordering": {"-created_at"}},
		Filter: listing.FilterSpec[domain.ContactMessage]{
			Categorical: map[string]func(domain.ContactMessage) string{
				"status":   func(m domain.ContactMessage) string { return m.Status },
				"priority": func(m domain.ContactMessage) string { return m.Priority },
			},
			TextFields: []func(domain.ContactMessage) string{
				func(m domain.ContactMessage) string { return m.Name },
				func(m domain.ContactMessage) string { return m.Email },
				func(m domain.ContactMessage) string { return m.Subject },
				func(m domain.ContactMessage) string { return m.Message },
			},
		},
		Stats: ContactMessageStats,
	}
}

func ContactMessageStats(items []domain.ContactMessage) domain.ContactMessageStats {
	return domain.ContactMessageStats{
		Total:    len(items),
		ByStatus: listing.CountBy(items, func(m domain.ContactMessage) string { return m.Status }),
		Unresolved: listing.Count(items, func(m domain.ContactMessage) bool {
			return m.Status != domain.ContactStatusResolved
		}),
		TotalReplies: listing.Sum(items, func(m domain.ContactMessage) int64 { return m.RepliesCount }),
	}
}

// ContactForm é o formulário público de contato
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func newContactForm(in Input) (listing.Form, error) {
	form := &ContactForm{}
	if err := decodeForm(in, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (f *ContactForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("name", f.Name)
	errs.Required("email", f.Email)
	errs.Email("email", f.Email)
	errs.Required("subject", f.Subject)
	errs.Required("message", f.Message)
	return errs
}

func (f *ContactForm) Payload() blogclient.Payload {
	return blogclient.Payload{Fields: map[string]any{
		"name":    f.Name,
		"email":   f.Email,
		"subject": f.Subject,
		"message": f.Message,
	}}
}

func newContactMessages(client blogclient.Client) Resource {
	return &resource[domain.ContactMessage, domain.ContactMessageStats]{
		client:    client,
		def:       contactMessageDefinition(),
		deletable: true,
		status: &statusTransition{
			field:   "status",
			allowed: domain.ContactStatuses,
		},
		itemActions: map[string]formFactory{
			VerbMarkResolved: noPayload,
		},
	}
}
