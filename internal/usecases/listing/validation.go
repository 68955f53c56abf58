package listing

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

// DefaultMaxUploadBytes é o limite de upload quando a configuração não define um
const DefaultMaxUploadBytes int64 = 5 << 20

// AllowedImageTypes são os content-types aceitos para imagens
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Required registra erro quando o valor está vazio
func (e FieldErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "Este campo é obrigatório.")
	}
}

// URL registra erro quando o valor não é uma URL http(s) absoluta. Valor
// vazio é ignorado; combine com Required quando o campo for obrigatório.
func (e FieldErrors) URL(field, value string) {
	if value == "" {
		return
	}

	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		e.Add(field, "Informe uma URL válida.")
	}
}

// Email registra erro quando o valor não é um endereço de e-mail
func (e FieldErrors) Email(field, value string) {
	if value == "" {
		return
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		e.Add(field, "Informe um e-mail válido.")
	}
}

// OneOf registra erro quando o valor não está entre os permitidos
func (e FieldErrors) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	if !slices.Contains(allowed, value) {
		e.Add(field, fmt.Sprintf("Valor inválido: %q.", value))
	}
}

// DateOrder registra erro em endField quando o fim é anterior ao início
func (e FieldErrors) DateOrder(startField string, start *time.Time, endField string, end *time.Time) {
	if start == nil || end == nil {
		return
	}
	if end.Before(*start) {
		e.Add(endField, fmt.Sprintf("A data final deve ser igual ou posterior a %s.", startField))
	}
}

// Upload valida tamanho e tipo de um arquivo enviado
func (e FieldErrors) Upload(file *blogclient.File, maxBytes int64) {
	if file == nil {
		return
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	if int64(len(file.Data)) > maxBytes {
		e.FileTooLarge(file.Field, maxBytes)
		return
	}

	if !slices.Contains(AllowedImageTypes, file.ContentType) {
		e.Add(file.Field, "Formato de imagem não suportado. Use JPEG, PNG, GIF ou WebP.")
	}
}

// FileTooLarge registra o erro de tamanho máximo de um arquivo
func (e FieldErrors) FileTooLarge(field string, maxBytes int64) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	limit := fmt.Sprintf("%d MB", maxBytes>>20)
	if maxBytes < 1<<20 {
		limit = fmt.Sprintf("%d KB", max(maxBytes>>10, 1))
	}
	e.Add(field, fmt.Sprintf("O arquivo deve ter no máximo %s.", limit))
}
