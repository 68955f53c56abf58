package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy é criada uma vez e é segura para uso concorrente
var ugcPolicy = bluemonday.UGCPolicy()

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize remove scripts, handlers e atributos perigosos mantendo a
// formatação usual de conteúdo escrito por usuários
func Sanitize(html string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(html))
}

// IsBlank indica se o conteúdo não tem texto visível depois de sanitizado
func IsBlank(html string) bool {
	return strings.TrimSpace(strictPolicy.Sanitize(html)) == ""
}
