package domain

import (
	"bytes"
	"time"

	"github.com/vfg2006/bitsblog-admin/pkg/utils"
)

// Timestamp aceita tanto datetime RFC3339 quanto datas simples vindas da API
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := utils.ParseDate(string(data))
	if err != nil {
		return err
	}
	if parsed != nil {
		t.Time = *parsed
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Ptr devolve o time.Time ou nil quando vazio
func (t *Timestamp) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return &t.Time
}
