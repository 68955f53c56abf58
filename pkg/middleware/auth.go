package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

// bearerToken extrai o token do header Authorization
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware repassa o token da requisição para as chamadas à API do blog.
// Não bloqueia nada; quem decide o acesso é StaffOnly.
func AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				r = r.WithContext(blogclient.WithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
