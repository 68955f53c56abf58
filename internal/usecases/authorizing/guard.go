package authorizing

import (
	"context"

	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

// GuardState é o estado da guarda de staff para uma requisição
type GuardState int

const (
	// StateUnknown: a sessão ainda não foi (ou não pôde ser) determinada
	StateUnknown GuardState = iota
	// StateAuthorized: sessão com is_staff verdadeiro
	StateAuthorized
	// StateRedirecting: sem sessão ou sem is_staff, a resposta é o redirect
	StateRedirecting
)

func (s GuardState) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Decision é o resultado da avaliação da guarda
type Decision struct {
	State      GuardState
	RedirectTo string
	Session    *domain.Session
	Err        error
}

type Guard struct {
	resolver    SessionResolver
	publicRoute string
}

func NewGuard(resolver SessionResolver, publicRoute string) *Guard {
	if publicRoute == "" {
		publicRoute = "/"
	}
	return &Guard{
		resolver:    resolver,
		publicRoute: publicRoute,
	}
}

// Evaluate resolve a sessão e decide o estado. Sessão ausente, inválida ou
// sem flag de staff leva ao redirect; falha ao consultar a sessão mantém o
// estado desconhecido e nada da área restrita é exibido.
func (g *Guard) Evaluate(ctx context.Context, token string) Decision {
	logger := log.ForContext(ctx)

	session, err := g.resolver.Resolve(ctx, token)
	if err != nil {
		if IsSessionRejected(err) {
			logger.WithError(err).Warn("Sessão recusada, redirecionando para a área pública")
			return g.redirect(nil, err)
		}

		logger.WithError(err).Error("Erro ao obter a sessão")
		return Decision{State: StateUnknown, Err: err}
	}

	if !session.Staff() {
		logger.WithField("user_id", session.UserID).Warn("Acesso negado: usuário sem flag de staff")
		return g.redirect(session, NewAuthError(ErrNotStaff, apiErrors.ErrInsufficientPrivilege, session.Username))
	}

	return Decision{State: StateAuthorized, Session: session}
}

func (g *Guard) redirect(session *domain.Session, err error) Decision {
	return Decision{
		State:      StateRedirecting,
		RedirectTo: g.publicRoute,
		Session:    session,
		Err:        err,
	}
}
