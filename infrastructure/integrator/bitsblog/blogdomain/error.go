package blogdomain

import (
	"fmt"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Chaves que o Django REST Framework usa para erros que não pertencem a um campo
const (
	detailKey         = "detail"
	nonFieldErrorsKey = "non_field_errors"
)

// ErrorResponse representa o corpo de erro da API do blog. O DRF devolve
// {"detail": "..."} ou {"campo": ["mensagem", ...]}.
type ErrorResponse struct {
	Detail string
	Fields map[string]string
}

// HasFieldErrors indica se a API devolveu erros associados a campos
func (e *ErrorResponse) HasFieldErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Message devolve uma mensagem única, útil para logs e alertas genéricos
func (e *ErrorResponse) Message() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// ParseErrorResponse decodifica o corpo de erro. Retorna nil quando o corpo
// não é um objeto JSON.
func ParseErrorResponse(body []byte) *ErrorResponse {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	resp := &ErrorResponse{Fields: make(map[string]string)}
	for key, value := range raw {
		msg := firstMessage(value)
		if msg == "" {
			continue
		}

		switch key {
		case detailKey, nonFieldErrorsKey:
			if resp.Detail == "" {
				resp.Detail = msg
			}
		default:
			resp.Fields[key] = msg
		}
	}

	return resp
}

// firstMessage extrai a primeira mensagem de um valor que pode ser string,
// lista de strings ou objeto aninhado
func firstMessage(value jsoniter.RawMessage) string {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		return text
	}

	var list []jsoniter.RawMessage
	if err := json.Unmarshal(value, &list); err == nil {
		for _, item := range list {
			if msg := firstMessage(item); msg != "" {
				return msg
			}
		}
		return ""
	}

	var nested map[string]jsoniter.RawMessage
	if err := json.Unmarshal(value, &nested); err == nil {
		keys := make([]string, 0, len(nested))
		for k := range nested {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if msg := firstMessage(nested[k]); msg != "" {
				return msg
			}
		}
	}

	return ""
}
