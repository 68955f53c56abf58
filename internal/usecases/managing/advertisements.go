package managing

import (
	"net/url"
	"time"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/pkg/utils"
)

const ResourceAdvertisements = "advertisements"

// VerbExpireOld expira os anúncios com data final vencida
const VerbExpireOld = "expire_old"

func advertisementDefinition() listing.Definition[domain.Advertisement, domain.AdvertisementStats] {
	return listing.Definition[domain.Advertisement, domain.AdvertisementStats]{
		Resource: ResourceAdvertisements,
		Query:    url.Values{"ordering": {"-created_at"}},
		Filter: listing.FilterSpec[domain.Advertisement]{
			Categorical: map[string]func(domain.Advertisement) string{
				"status":    func(a domain.Advertisement) string { return a.Status },
				"placement": func(a domain.Advertisement) string { return a.Placement },
				"type":      func(a domain.Advertisement) string { return a.AdType },
			},
			TextFields: []func(domain.Advertisement) string{
				func(a domain.Advertisement) string { return a.Title },
				func(a domain.Advertisement) string { return a.Description },
			},
		},
		Stats: AdvertisementStats,
	}
}

// AdvertisementStats agrega a lista completa de anúncios. O CTR médio é a
// soma dos cliques sobre a soma das impressões.
func AdvertisementStats(items []domain.Advertisement) domain.AdvertisementStats {
	byStatus := listing.CountBy(items, func(a domain.Advertisement) string { return a.Status })

	impressions := listing.Sum(items, func(a domain.Advertisement) int64 { return a.Impressions })
	clicks := listing.Sum(items, func(a domain.Advertisement) int64 { return a.Clicks })

	return domain.AdvertisementStats{
		Total:            len(items),
		Active:           byStatus[domain.AdStatusActive],
		Paused:           byStatus[domain.AdStatusPaused],
		Expired:          byStatus[domain.AdStatusExpired],
		Draft:            byStatus[domain.AdStatusDraft],
		ByPlacement:      listing.CountBy(items, func(a domain.Advertisement) string { return a.Placement }),
		TotalImpressions: impressions,
		TotalClicks:      clicks,
		AverageCTR:       listing.Rate(clicks, impressions),
	}
}

// AdvertisementForm é o formulário de criação e edição de anúncio
type AdvertisementForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	LinkURL     string `form:"link_url"`
	Placement   string `form:"placement"`
	AdType      string `form:"ad_type"`
	Status      string `form:"status"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`

	Image    *blogclient.File `form:"-"`
	maxBytes int64
}

func newAdvertisementForm(maxBytes int64) formFactory {
	return func(in Input) (listing.Form, error) {
		form := &AdvertisementForm{maxBytes: maxBytes}
		if err := decodeForm(in, form); err != nil {
			return nil, err
		}
		form.Image = in.File("image")
		return form, nil
	}
}

func (f *AdvertisementForm) Validate() listing.FieldErrors {
	errs := listing.FieldErrors{}

	errs.Required("title", f.Title)
	errs.Required("link_url", f.LinkURL)
	errs.Required("placement", f.Placement)
	errs.Required("ad_type", f.AdType)

	errs.URL("link_url", f.LinkURL)
	errs.OneOf("placement", f.Placement, domain.AdPlacements)
	errs.OneOf("ad_type", f.AdType, domain.AdTypes)
	errs.OneOf("status", f.Status, domain.AdStatuses)

	start, startErr := utils.ParseDate(f.StartDate)
	if startErr != nil {
		errs.Add("start_date", "Data inválida.")
	}
	end, endErr := utils.ParseDate(f.EndDate)
	if endErr != nil {
		errs.Add("end_date", "Data inválida.")
	}
	errs.DateOrder("start_date", start, "end_date", end)

	errs.Upload(f.Image, f.maxBytes)

	return errs
}

func (f *AdvertisementForm) Payload() blogclient.Payload {
	fields := map[string]any{
		"title":       f.Title,
		"description": f.Description,
		"link_url":    f.LinkURL,
		"placement":   f.Placement,
		"ad_type":     f.AdType,
	}

	setIfPresent(fields, "status", f.Status)
	setIfPresent(fields, "start_date", formatDate(f.StartDate))
	setIfPresent(fields, "end_date", formatDate(f.EndDate))

	payload := blogclient.Payload{Fields: fields}
	if f.Image != nil {
		payload.Files = []blogclient.File{*f.Image}
	}
	return payload
}

// formatDate normaliza a data para RFC3339. Só é chamado após Validate.
func formatDate(value string) string {
	date, err := utils.ParseDate(value)
	if err != nil || date == nil {
		return ""
	}
	return date.Format(time.RFC3339)
}

func newAdvertisements(client blogclient.Client, maxBytes int64) Resource {
	return &resource[domain.Advertisement, domain.AdvertisementStats]{
		client:    client,
		def:       advertisementDefinition(),
		create:    newAdvertisementForm(maxBytes),
		update:    newAdvertisementForm(maxBytes),
		deletable: true,
		status: &statusTransition{
			field:   "status",
			allowed: domain.AdStatuses,
		},
		collectionActions: map[string]formFactory{
			VerbExpireOld: noPayload,
		},
	}
}
