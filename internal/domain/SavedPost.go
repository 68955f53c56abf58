package domain

import "strconv"

// PostSummary é o resumo do post embutido em um post salvo
type PostSummary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Excerpt      string  `json:"excerpt"`
	CategoryName *string `json:"category_name"`
}

// SavedPost representa um post salvo pelo usuário
type SavedPost struct {
	ID        int         `json:"id"`
	Post      PostSummary `json:"post"`
	CreatedAt *Timestamp  `json:"created_at"`
}

func (s SavedPost) Key() string {
	if s.ID == 0 {
		return ""
	}
	return strconv.Itoa(s.ID)
}

type SavedPostStats struct {
	Total      int `json:"total"`
	Categories int `json:"categories"` // Categorias distintas entre os posts salvos
}
