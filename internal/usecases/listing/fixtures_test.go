package listing

import (
	"strconv"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

type ad struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Placement   string `json:"placement"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

func (a ad) Key() string {
	if a.ID == 0 {
		return ""
	}
	return strconv.Itoa(a.ID)
}

type adStats struct {
	Total    int
	ByStatus map[string]int
	CTR      float64
}

func adFilter() FilterSpec[ad] {
	return FilterSpec[ad]{
		Categorical: map[string]func(ad) string{
			"status":    func(a ad) string { return a.Status },
			"placement": func(a ad) string { return a.Placement },
		},
		TextFields: []func(ad) string{
			func(a ad) string { return a.Title },
			func(a ad) string { return a.Description },
		},
	}
}

func adReducer(items []ad) adStats {
	return adStats{
		Total:    len(items),
		ByStatus: CountBy(items, func(a ad) string { return a.Status }),
		CTR: Rate(
			Sum(items, func(a ad) int64 { return a.Clicks }),
			Sum(items, func(a ad) int64 { return a.Impressions }),
		),
	}
}

func adDefinition() Definition[ad, adStats] {
	return Definition[ad, adStats]{
		Resource: "advertisements",
		Filter:   adFilter(),
		Stats:    adReducer,
	}
}

func sampleAds() []ad {
	return []ad{
		{ID: 1, Title: "Banner Go", Description: "Curso de Go", Status: "active", Placement: "header", Impressions: 1000, Clicks: 50},
		{ID: 2, Title: "Sidebar", Description: "Livro de Python", Status: "paused", Placement: "sidebar", Impressions: 1000, Clicks: 50},
		{ID: 3, Title: "Popup promo", Description: "Promoção GOLANG", Status: "active", Placement: "popup"},
		{ID: 4, Title: "Rodapé", Description: "", Status: "draft", Placement: "footer"},
	}
}

// titleForm é um formulário mínimo com título obrigatório
type titleForm struct {
	Title string
}

func (f titleForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.Required("title", f.Title)
	return errs
}

func (f titleForm) Payload() blogclient.Payload {
	return blogclient.Payload{Fields: map[string]any{"title": f.Title}}
}
