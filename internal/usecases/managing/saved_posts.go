package managing

import (
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
)

const ResourceSavedPosts = "saved-posts"

func savedPostDefinition() listing.Definition[domain.SavedPost, domain.SavedPostStats] {
	return listing.Definition[domain.SavedPost, domain.SavedPostStats]{
		Resource: ResourceSavedPosts,
		Filter: listing.FilterSpec[domain.SavedPost]{
			TextFields: []func(domain.SavedPost) string{
				func(s domain.SavedPost) string { return s.Post.Title },
				func(s domain.SavedPost) string { return s.Post.Excerpt },
			},
		},
		Stats: SavedPostStats,
	}
}

func SavedPostStats(items []domain.SavedPost) domain.SavedPostStats {
	categories := make(map[string]struct{})
	for _, item := range items {
		if item.Post.CategoryName != nil && *item.Post.CategoryName != "" {
			categories[*item.Post.CategoryName] = struct{}{}
		}
	}

	return domain.SavedPostStats{
		Total:      len(items),
		Categories: len(categories),
	}
}

// Posts salvos só podem ser removidos
func newSavedPosts(client blogclient.Client) Resource {
	return &resource[domain.SavedPost, domain.SavedPostStats]{
		client:    client,
		def:       savedPostDefinition(),
		deletable: true,
	}
}
