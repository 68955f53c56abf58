package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/authorizing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionFromContext devolve a sessão autorizada pela guarda
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(ContextKeySession).(*domain.Session)
	return session
}

// StaffOnly restringe a rota a usuários com a flag de staff. Sem sessão ou
// sem a flag, responde com redirect para a rota pública. Enquanto a sessão
// não puder ser determinada, nada da área restrita é exibido.
func StaffOnly(guard *authorizing.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := guard.Evaluate(r.Context(), blogclient.TokenFromContext(r.Context()))

			switch decision.State {
			case authorizing.StateAuthorized:
				ctx := context.WithValue(r.Context(), ContextKeySession, decision.Session)
				ctx = log.WithUserID(ctx, decision.Session.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))

			case authorizing.StateRedirecting:
				log.ForContext(r.Context()).WithField("path", r.URL.Path).
					Infof("Redirecionando para %s", decision.RedirectTo)
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)

			default:
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Não foi possível verificar a sessão", nil)
			}
		})
	}
}
