package utils

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate aceita datas no formato da API do blog (RFC3339 com ou sem fuso)
// e datas simples yyyy-mm-dd. String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return &date, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
