package managing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
)

func TestAdvertisementStats(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Advertisement
		want  domain.AdvertisementStats
	}{
		{
			name:  "lista vazia",
			items: []domain.Advertisement{},
			want: domain.AdvertisementStats{
				ByPlacement: map[string]int{},
			},
		},
		{
			name: "CTR médio é cliques totais sobre impressões totais",
			items: []domain.Advertisement{
				{ID: 1, Status: domain.AdStatusActive, Placement: "header", Impressions: 1000, Clicks: 50},
				{ID: 2, Status: domain.AdStatusPaused, Placement: "sidebar", Impressions: 1000, Clicks: 50},
			},
			want: domain.AdvertisementStats{
				Total:            2,
				Active:           1,
				Paused:           1,
				ByPlacement:      map[string]int{"header": 1, "sidebar": 1},
				TotalImpressions: 2000,
				TotalClicks:      100,
				AverageCTR:       5,
			},
		},
		{
			name: "sem impressões o CTR é zero",
			items: []domain.Advertisement{
				{ID: 1, Status: domain.AdStatusDraft, Placement: "footer", Clicks: 3},
				{ID: 2, Status: domain.AdStatusExpired, Placement: "footer"},
			},
			want: domain.AdvertisementStats{
				Total:       2,
				Expired:     1,
				Draft:       1,
				ByPlacement: map[string]int{"footer": 2},
				TotalClicks: 3,
				AverageCTR:  0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvertisementStats(tt.items))
		})
	}
}

func TestAdvertisement_CTR(t *testing.T) {
	assert.Equal(t, 2.5, domain.Advertisement{Impressions: 200, Clicks: 5}.CTR())
	assert.Equal(t, 0.0, domain.Advertisement{Clicks: 5}.CTR())
}

func validAdInput() Input {
	return Input{Values: map[string]any{
		"title":      "Curso de Go",
		"link_url":   "https://bitsblog.dev/go",
		"placement":  "header",
		"ad_type":    "image",
		"status":     "draft",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}}
}

func TestAdvertisementForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		change     func(in *Input)
		wantFields []string
	}{
		{
			name:   "formulário válido",
			change: func(in *Input) {},
		},
		{
			name: "campos obrigatórios",
			change: func(in *Input) {
				in.Values = map[string]any{}
			},
			wantFields: []string{"ad_type", "link_url", "placement", "title"},
		},
		{
			name:       "URL inválida",
			change:     func(in *Input) { in.Values["link_url"] = "bitsblog.dev" },
			wantFields: []string{"link_url"},
		},
		{
			name:       "posicionamento desconhecido",
			change:     func(in *Input) { in.Values["placement"] = "topo" },
			wantFields: []string{"placement"},
		},
		{
			name:       "data final antes da inicial",
			change:     func(in *Input) { in.Values["end_date"] = "2023-12-31" },
			wantFields: []string{"end_date"},
		},
		{
			name:       "data em formato inválido",
			change:     func(in *Input) { in.Values["start_date"] = "01/01/2024" },
			wantFields: []string{"start_date"},
		},
		{
			name: "imagem acima do limite",
			change: func(in *Input) {
				in.Files = []blogclient.File{{Field: "image", Name: "a.png", ContentType: "image/png", Data: make([]byte, 101)}}
			},
			wantFields: []string{"image"},
		},
		{
			name: "imagem com tipo não suportado",
			change: func(in *Input) {
				in.Files = []blogclient.File{{Field: "image", Name: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}}
			},
			wantFields: []string{"image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAdInput()
			tt.change(&in)

			form, err := newAdvertisementForm(100)(in)
			assert.NoError(t, err)

			errs := form.Validate()
			if len(tt.wantFields) == 0 {
				assert.True(t, errs.IsEmpty(), "erros inesperados: %v", errs)
				return
			}
			assert.Equal(t, tt.wantFields, errs.Fields())
		})
	}
}

func TestAdvertisementForm_Payload(t *testing.T) {
	in := validAdInput()
	in.Files = []blogclient.File{{Field: "image", Name: "a.png", ContentType: "image/png", Data: []byte{1}}}

	form, err := newAdvertisementForm(100)(in)
	assert.NoError(t, err)

	payload := form.Payload()

	assert.True(t, payload.IsMultipart())
	assert.Equal(t, "Curso de Go", payload.Fields["title"])
	assert.Equal(t, "2024-01-01T00:00:00Z", payload.Fields["start_date"])
	assert.Equal(t, "draft", payload.Fields["status"])
	assert.Len(t, payload.Files, 1)
}
