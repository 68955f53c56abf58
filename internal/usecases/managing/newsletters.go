package managing

import (
	"net/url"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/pkg/htmlsanitize"
	"github.com/vfg2006/bitsblog-admin/pkg/utils"
)

const (
	ResourceNewsletters         = "newsletters"
	ResourceNewsletterTemplates = "newsletter-templates"
)

// VerbSend dispara o envio da newsletter
const VerbSend = "send"

func newsletterDefinition() listing.Definition[domain.Newsletter, domain.NewsletterStats] {
	return listing.Definition[domain.Newsletter, domain.NewsletterStats]{
		Resource: ResourceNewsletters,
		Query:    url.Values{"ordering": {"-created_at"}},
		Filter: listing.FilterSpec[domain.Newsletter]{
			Categorical: map[string]func(domain.Newsletter) string{
				"status": func(n domain.Newsletter) string { return n.Status },
			},
			TextFields: []func(domain.Newsletter) string{
				func(n domain.Newsletter) string { return n.Subject },
				func(n domain.Newsletter) string { return n.Content },
			},
		},
		Stats: NewsletterStats,
	}
}

func NewsletterStats(items []domain.Newsletter) domain.NewsletterStats {
	recipients := listing.Sum(items, func(n domain.Newsletter) int64 { return n.RecipientsCount })
	opens := listing.Sum(items, func(n domain.Newsletter) int64 { return n.OpensCount })

	return domain.NewsletterStats{
		Total:           len(items),
		ByStatus:        listing.CountBy(items, func(n domain.Newsletter) string { return n.Status }),
		TotalRecipients: recipients,
		TotalOpens:      opens,
		OpenRate:        listing.Rate(opens, recipients),
	}
}

// NewsletterForm é o formulário da newsletter. O conteúdo HTML é sanitizado
// antes do envio.
type NewsletterForm struct {
	Subject     string `form:"subject"`
	Content     string `form:"content"`
	Template    *int   `form:"template"`
	ScheduledAt string `form:"scheduled_at"`
}

func newNewsletterForm(in Input) (listing.Form, error) {
	form := &NewsletterForm{}
	if err := decodeForm(in, form); err != nil {
		return nil, err
	}
	form.Content = htmlsanitize.Sanitize(form.Content)
	return form, nil
}

func (f *NewsletterForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("subject", f.Subject)
	if htmlsanitize.IsBlank(f.Content) {
		errs.Add("content", "Este campo é obrigatório.")
	}
	if _, err := utils.ParseDate(f.ScheduledAt); err != nil {
		errs.Add("scheduled_at", "Data inválida.")
	}
	return errs
}

func (f *NewsletterForm) Payload() blogclient.Payload {
	fields := map[string]any{
		"subject": f.Subject,
		"content": f.Content,
	}
	if f.Template != nil {
		fields["template"] = *f.Template
	}
	setIfPresent(fields, "scheduled_at", formatDate(f.ScheduledAt))
	return blogclient.Payload{Fields: fields}
}

func newNewsletters(client blogclient.Client) Resource {
	return &resource[domain.Newsletter, domain.NewsletterStats]{
		client:    client,
		def:       newsletterDefinition(),
		create:    newNewsletterForm,
		update:    newNewsletterForm,
		deletable: true,
		itemActions: map[string]formFactory{
			VerbSend: noPayload,
		},
	}
}

func newsletterTemplateDefinition() listing.Definition[domain.NewsletterTemplate, domain.NewsletterTemplateStats] {
	return listing.Definition[domain.NewsletterTemplate, domain.NewsletterTemplateStats]{
		Resource: ResourceNewsletterTemplates,
		Query:    url.Values{"ordering": {"name"}},
		Filter: listing.FilterSpec[domain.NewsletterTemplate]{
			Categorical: map[string]func(domain.NewsletterTemplate) string{
				"type":   func(t domain.NewsletterTemplate) string { return t.TemplateType },
				"status": func(t domain.NewsletterTemplate) string { return t.Status() },
			},
			TextFields: []func(domain.NewsletterTemplate) string{
				func(t domain.NewsletterTemplate) string { return t.Name },
				func(t domain.NewsletterTemplate) string { return t.Subject },
			},
		},
		Stats: NewsletterTemplateStats,
	}
}

func NewsletterTemplateStats(items []domain.NewsletterTemplate) domain.NewsletterTemplateStats {
	active := listing.Count(items, func(t domain.NewsletterTemplate) bool { return t.IsActive })

	return domain.NewsletterTemplateStats{
		Total:    len(items),
		Active:   active,
		Inactive: len(items) - active,
		ByType:   listing.CountBy(items, func(t domain.NewsletterTemplate) string { return t.TemplateType }),
	}
}

type NewsletterTemplateForm struct {
	Name         string `form:"name"`
	Subject      string `form:"subject"`
	Content      string `form:"content"`
	TemplateType string `form:"template_type"`
	IsActive     *bool  `form:"is_active"`
}

func newNewsletterTemplateForm(in Input) (listing.Form, error) {
	form := &NewsletterTemplateForm{}
	if err := decodeForm(in, form); err != nil {
		return nil, err
	}
	form.Content = htmlsanitize.Sanitize(form.Content)
	return form, nil
}

func (f *NewsletterTemplateForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("name", f.Name)
	errs.Required("subject", f.Subject)
	errs.Required("template_type", f.TemplateType)
	errs.OneOf("template_type", f.TemplateType, domain.TemplateTypes)
	if htmlsanitize.IsBlank(f.Content) {
		errs.Add("content", "Este campo é obrigatório.")
	}
	return errs
}

func (f *NewsletterTemplateForm) Payload() blogclient.Payload {
	fields := map[string]any{
		"name":          f.Name,
		"subject":       f.Subject,
		"content":       f.Content,
		"template_type": f.TemplateType,
	}
	if f.IsActive != nil {
		fields["is_active"] = *f.IsActive
	}
	return blogclient.Payload{Fields: fields}
}

func newNewsletterTemplates(client blogclient.Client) Resource {
	return &resource[domain.NewsletterTemplate, domain.NewsletterTemplateStats]{
		client:    client,
		def:       newsletterTemplateDefinition(),
		create:    newNewsletterTemplateForm,
		update:    newNewsletterTemplateForm,
		deletable: true,
		status: &statusTransition{
			field:   "is_active",
			allowed: []string{"active", "inactive"},
			encode:  func(status string) any { return status == "active" },
		},
	}
}
