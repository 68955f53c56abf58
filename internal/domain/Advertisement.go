package domain

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bitsblog-admin/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Status de anúncio
const (
	AdStatusActive  = "active"
	AdStatusPaused  = "paused"
	AdStatusExpired = "expired"
	AdStatusDraft   = "draft"
)

var (
	AdStatuses   = []string{AdStatusActive, AdStatusPaused, AdStatusExpired, AdStatusDraft}
	AdPlacements = []string{"header", "sidebar", "in_content", "footer", "popup"}
	AdTypes      = []string{"image", "text", "html", "video"}
)

// Advertisement representa um anúncio exibido no blog
type Advertisement struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       *string    `json:"image"`
	LinkURL     string     `json:"link_url"`
	Placement   string     `json:"placement"`
	AdType      string     `json:"ad_type"`
	Status      string     `json:"status"`
	StartDate   *Timestamp `json:"start_date"`
	EndDate     *Timestamp `json:"end_date"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   *Timestamp `json:"created_at"`
	UpdatedAt   *Timestamp `json:"updated_at"`
}

func (a Advertisement) Key() string {
	if a.ID == 0 {
		return ""
	}
	return strconv.Itoa(a.ID)
}

// CTR do anúncio, em porcentagem com duas casas
func (a Advertisement) CTR() float64 {
	return utils.Percent(a.Clicks, a.Impressions)
}

// MarshalJSON acrescenta o CTR calculado aos campos vindos da API
func (a Advertisement) MarshalJSON() ([]byte, error) {
	type advertisement Advertisement
	return json.Marshal(struct {
		advertisement
		CTR float64 `json:"ctr"`
	}{advertisement(a), a.CTR()})
}

// AdvertisementStats agrega os anúncios carregados
type AdvertisementStats struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	Paused           int            `json:"paused"`
	Expired          int            `json:"expired"`
	Draft            int            `json:"draft"`
	ByPlacement      map[string]int `json:"by_placement"`
	TotalImpressions int64          `json:"total_impressions"`
	TotalClicks      int64          `json:"total_clicks"`
	AverageCTR       float64        `json:"average_ctr"` // porcentagem com duas casas
}
