package authorizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
)

type fakeResolver struct {
	session *domain.Session
	err     error
}

func (f fakeResolver) Resolve(context.Context, string) (*domain.Session, error) {
	return f.session, f.err
}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		resolver     fakeResolver
		wantState    GuardState
		wantRedirect string
		wantErr      error
	}{
		{
			name:      "staff autorizado",
			resolver:  fakeResolver{session: &domain.Session{UserID: 1, IsStaff: boolPtr(true)}},
			wantState: StateAuthorized,
		},
		{
			name:         "sessão sem a flag de staff",
			resolver:     fakeResolver{session: &domain.Session{UserID: 2, IsStaff: boolPtr(false)}},
			wantState:    StateRedirecting,
			wantRedirect: "/blog",
			wantErr:      ErrNotStaff,
		},
		{
			name:         "flag ausente é tratada como falsa",
			resolver:     fakeResolver{session: &domain.Session{UserID: 3}},
			wantState:    StateRedirecting,
			wantRedirect: "/blog",
			wantErr:      ErrNotStaff,
		},
		{
			name:         "sem sessão",
			resolver:     fakeResolver{err: NewAuthError(ErrMissingToken, "", "")},
			wantState:    StateRedirecting,
			wantRedirect: "/blog",
			wantErr:      ErrMissingToken,
		},
		{
			name:         "token expirado",
			resolver:     fakeResolver{err: NewAuthError(ErrExpiredToken, "", "")},
			wantState:    StateRedirecting,
			wantRedirect: "/blog",
			wantErr:      ErrExpiredToken,
		},
		{
			name:      "sessão indeterminada",
			resolver:  fakeResolver{err: NewAuthError(ErrSessionUnavailable, "", "timeout")},
			wantState: StateUnknown,
			wantErr:   ErrSessionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(tt.resolver, "/blog")

			decision := guard.Evaluate(context.Background(), "tok")

			assert.Equal(t, tt.wantState, decision.State)
			assert.Equal(t, tt.wantRedirect, decision.RedirectTo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, decision.Err, tt.wantErr)
			} else {
				assert.NoError(t, decision.Err)
				assert.NotNil(t, decision.Session)
			}
		})
	}
}

func TestGuard_RotaPublicaPadrao(t *testing.T) {
	guard := NewGuard(fakeResolver{session: &domain.Session{UserID: 3}}, "")

	decision := guard.Evaluate(context.Background(), "token")

	assert.Equal(t, StateRedirecting, decision.State)
	assert.Equal(t, "/", decision.RedirectTo)
}

func TestGuardState_String(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "redirecting", StateRedirecting.String())
}
