package authorizing

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/domain"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

// SessionResolver obtém a sessão a partir do token de acesso
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// NewSessionResolver usa a validação local do JWT quando o segredo está
// configurado e, caso contrário, pergunta à API quem é o usuário
func NewSessionResolver(cfg *config.Config, client blogclient.Client) SessionResolver {
	if cfg.Auth.JWTSecret != "" {
		return NewJWTSessionResolver(cfg.Auth.JWTSecret)
	}
	return NewRemoteSessionResolver(client)
}

type JWTSessionResolver struct {
	secret []byte
}

func NewJWTSessionResolver(secret string) *JWTSessionResolver {
	return &JWTSessionResolver{secret: []byte(secret)}
}

func (r *JWTSessionResolver) Resolve(_ context.Context, tokenString string) (*domain.Session, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrUnauthenticated, "")
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return r.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrUnauthenticated, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, "")
	}

	// refresh tokens usam o mesmo segredo e não abrem sessão
	if claims.TokenType != domain.AccessTokenType {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, fmt.Sprintf("token_type %q", claims.TokenType))
	}

	return &domain.Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		IsStaff:  claims.IsStaff,
	}, nil
}

// RemoteSessionResolver consulta /api/auth/user/ com o token da requisição
type RemoteSessionResolver struct {
	client blogclient.Client
}

func NewRemoteSessionResolver(client blogclient.Client) *RemoteSessionResolver {
	return &RemoteSessionResolver{client: client}
}

func (r *RemoteSessionResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrUnauthenticated, "")
	}

	user, err := r.client.CurrentUser(blogclient.WithToken(ctx, token))
	if err != nil {
		var respErr *blogclient.ResponseError
		if errors.As(err, &respErr) && respErr.IsUnauthorized() {
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, respErr.Error())
		}
		return nil, NewAuthError(ErrSessionUnavailable, apiErrors.ErrCommunication, err.Error())
	}

	return &domain.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}, nil
}
