package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

func TestFieldErrors_URL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{value: "", valid: true},
		{value: "https://bitsblog.dev/promo", valid: true},
		{value: "http://localhost:3000", valid: true},
		{value: "bitsblog.dev", valid: false},
		{value: "ftp://bitsblog.dev", valid: false},
		{value: "https://", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			errs := FieldErrors{}
			errs.URL("link_url", tt.value)
			assert.Equal(t, tt.valid, errs.IsEmpty())
		})
	}
}

func TestFieldErrors_Email(t *testing.T) {
	errs := FieldErrors{}
	errs.Email("ok", "leitor@bitsblog.dev")
	errs.Email("nome", "Leitor <leitor@bitsblog.dev>")
	errs.Email("invalido", "leitor@")

	assert.Equal(t, []string{"invalido", "nome"}, errs.Fields())
}

func TestFieldErrors_RequiredEOneOf(t *testing.T) {
	errs := FieldErrors{}
	errs.Required("title", "   ")
	errs.OneOf("status", "archived", []string{"draft", "active"})
	errs.OneOf("type", "", []string{"banner"})

	assert.Equal(t, []string{"status", "title"}, errs.Fields())
}

func TestFieldErrors_DateOrder(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	before := start.Add(-24 * time.Hour)
	same := start

	errs := FieldErrors{}
	errs.DateOrder("start_date", &start, "end_date", &same)
	errs.DateOrder("start_date", &start, "end_date", nil)
	assert.True(t, errs.IsEmpty())

	errs.DateOrder("start_date", &start, "end_date", &before)
	assert.Contains(t, errs, "end_date")
}

func TestFieldErrors_Upload(t *testing.T) {
	tests := []struct {
		name  string
		file  *blogclient.File
		max   int64
		valid bool
	}{
		{name: "sem arquivo", file: nil, valid: true},
		{name: "png dentro do limite", file: &blogclient.File{Field: "image", ContentType: "image/png", Data: make([]byte, 10)}, max: 100, valid: true},
		{name: "acima do limite", file: &blogclient.File{Field: "image", ContentType: "image/png", Data: make([]byte, 101)}, max: 100, valid: false},
		{name: "tipo não suportado", file: &blogclient.File{Field: "image", ContentType: "application/pdf", Data: make([]byte, 10)}, max: 100, valid: false},
		{name: "limite padrão", file: &blogclient.File{Field: "image", ContentType: "image/jpeg", Data: make([]byte, 10)}, max: 0, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := FieldErrors{}
			errs.Upload(tt.file, tt.max)
			assert.Equal(t, tt.valid, errs.IsEmpty())
		})
	}
}

func TestFieldErrors_FileTooLarge(t *testing.T) {
	tests := []struct {
		name string
		max  int64
		want string
	}{
		{name: "limite em MB", max: 5 << 20, want: "O arquivo deve ter no máximo 5 MB."},
		{name: "limite em KB", max: 1024, want: "O arquivo deve ter no máximo 1 KB."},
		{name: "limite menor que 1 KB", max: 100, want: "O arquivo deve ter no máximo 1 KB."},
		{name: "limite padrão", max: 0, want: "O arquivo deve ter no máximo 5 MB."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := FieldErrors{}
			errs.FileTooLarge("image", tt.max)
			assert.Equal(t, tt.want, errs["image"])
		})
	}
}
