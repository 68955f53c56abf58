package domain

import "strconv"

// Status de mensagem de contato
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusResolved = "resolved"
)

var (
	ContactStatuses   = []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusResolved}
	ContactPriorities = []string{"low", "normal", "high"}
)

// ContactMessage representa uma mensagem enviada pelo formulário de contato
type ContactMessage struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	RepliesCount int64      `json:"replies_count"`
	ResolvedAt   *Timestamp `json:"resolved_at"`
	CreatedAt    *Timestamp `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at"`
}

func (m ContactMessage) Key() string {
	if m.ID == 0 {
		return ""
	}
	return strconv.Itoa(m.ID)
}

type ContactMessageStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	Unresolved   int            `json:"unresolved"`
	TotalReplies int64          `json:"total_replies"`
}
