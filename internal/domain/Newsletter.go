package domain

import "strconv"

// Status de newsletter
const (
	NewsletterStatusDraft     = "draft"
	NewsletterStatusScheduled = "scheduled"
	NewsletterStatusSending   = "sending"
	NewsletterStatusSent      = "sent"
	NewsletterStatusFailed    = "failed"
)

var NewsletterStatuses = []string{
	NewsletterStatusDraft,
	NewsletterStatusScheduled,
	NewsletterStatusSending,
	NewsletterStatusSent,
	NewsletterStatusFailed,
}

// Newsletter representa uma edição da newsletter
type Newsletter struct {
	ID              int        `json:"id"`
	Subject         string     `json:"subject"`
	Content         string     `json:"content"`
	Template        *int       `json:"template"`
	Status          string     `json:"status"`
	ScheduledAt     *Timestamp `json:"scheduled_at"`
	SentAt          *Timestamp `json:"sent_at"`
	RecipientsCount int64      `json:"recipients_count"`
	OpensCount      int64      `json:"opens_count"`
	ClicksCount     int64      `json:"clicks_count"`
	CreatedAt       *Timestamp `json:"created_at"`
	UpdatedAt       *Timestamp `json:"updated_at"`
}

func (n Newsletter) Key() string {
	if n.ID == 0 {
		return ""
	}
	return strconv.Itoa(n.ID)
}

// NewsletterStats agrega as newsletters carregadas
type NewsletterStats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	TotalRecipients int64          `json:"total_recipients"`
	TotalOpens      int64          `json:"total_opens"`
	OpenRate        float64        `json:"open_rate"` // aberturas / destinatários, em porcentagem
}

// Tipos de template
var TemplateTypes = []string{"welcome", "weekly_digest", "announcement", "promotional", "custom"}

// NewsletterTemplate representa um template de e-mail
type NewsletterTemplate struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	Content      string     `json:"content"`
	TemplateType string     `json:"template_type"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    *Timestamp `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at"`
}

func (t NewsletterTemplate) Key() string {
	if t.ID == 0 {
		return ""
	}
	return strconv.Itoa(t.ID)
}

// Status deriva active/inactive da flag is_active
func (t NewsletterTemplate) Status() string {
	if t.IsActive {
		return "active"
	}
	return "inactive"
}

type NewsletterTemplateStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByType   map[string]int `json:"by_type"`
}
