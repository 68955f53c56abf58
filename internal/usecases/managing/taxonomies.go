package managing

import (
	"net/url"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
)

const (
	ResourceCategories = "categories"
	ResourceTags       = "tags"
)

func categoryDefinition() listing.Definition[domain.Category, domain.TaxonomyStats] {
	return listing.Definition[domain.Category, domain.TaxonomyStats]{
		Resource: ResourceCategories,
		Query:    url.Values{"ordering": {"name"}},
		Filter: listing.FilterSpec[domain.Category]{
			TextFields: []func(domain.Category) string{
				func(c domain.Category) string { return c.Name },
				func(c domain.Category) string { return c.Description },
			},
		},
		Stats: CategoryStats,
	}
}

func CategoryStats(items []domain.Category) domain.TaxonomyStats {
	return domain.TaxonomyStats{
		Total:      len(items),
		TotalPosts: listing.Sum(items, func(c domain.Category) int64 { return c.PostsCount }),
		Empty:      listing.Count(items, func(c domain.Category) bool { return c.PostsCount == 0 }),
	}
}

func tagDefinition() listing.Definition[domain.Tag, domain.TaxonomyStats] {
	return listing.Definition[domain.Tag, domain.TaxonomyStats]{
		Resource: ResourceTags,
		Query:    url.Values{"ordering": {"name"}},
		Filter: listing.FilterSpec[domain.Tag]{
			TextFields: []func(domain.Tag) string{
				func(t domain.Tag) string { return t.Name },
			},
		},
		Stats: TagStats,
	}
}

func TagStats(items []domain.Tag) domain.TaxonomyStats {
	return domain.TaxonomyStats{
		Total:      len(items),
		TotalPosts: listing.Sum(items, func(t domain.Tag) int64 { return t.PostsCount }),
		Empty:      listing.Count(items, func(t domain.Tag) bool { return t.PostsCount == 0 }),
	}
}

// TaxonomyForm serve para categorias (com descrição) e tags
type TaxonomyForm struct {
	Name        string `form:"name"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
}

func newTaxonomyForm(in Input) (listing.Form, error) {
	form := &TaxonomyForm{}
	if err := decodeForm(in, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (f *TaxonomyForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}
	errs.Required("name", f.Name)
	return errs
}

func (f *TaxonomyForm) Payload() blogclient.Payload {
	fields := map[string]any{"name": f.Name}
	setIfPresent(fields, "slug", f.Slug)
	setIfPresent(fields, "description", f.Description)
	return blogclient.Payload{Fields: fields}
}

func newCategories(client blogclient.Client) Resource {
	return &resource[domain.Category, domain.TaxonomyStats]{
		client:    client,
		def:       categoryDefinition(),
		create:    newTaxonomyForm,
		update:    newTaxonomyForm,
		deletable: true,
	}
}

func newTags(client blogclient.Client) Resource {
	return &resource[domain.Tag, domain.TaxonomyStats]{
		client:    client,
		def:       tagDefinition(),
		create:    newTaxonomyForm,
		update:    newTaxonomyForm,
		deletable: true,
	}
}
