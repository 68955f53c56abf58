package domain

// Category representa uma categoria de posts
type Category struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	PostsCount  int64      `json:"posts_count"`
	CreatedAt   *Timestamp `json:"created_at"`
	UpdatedAt   *Timestamp `json:"updated_at"`
}

func (c Category) Key() string {
	return c.Slug
}

// Tag representa uma tag de posts
type Tag struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	PostsCount int64      `json:"posts_count"`
	CreatedAt  *Timestamp `json:"created_at"`
}

func (t Tag) Key() string {
	return t.Slug
}

// TaxonomyStats agrega categorias ou tags
type TaxonomyStats struct {
	Total      int   `json:"total"`
	TotalPosts int64 `json:"total_posts"`
	Empty      int   `json:"empty"` // Sem nenhum post associado
}
