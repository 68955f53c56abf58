package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session é o usuário autenticado no painel
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  *bool  `json:"is_staff"` // nil quando a sessão não informa a flag
}

// Staff indica se a sessão tem a flag de staff ligada
func (s *Session) Staff() bool {
	return s != nil && s.IsStaff != nil && *s.IsStaff
}

// AccessTokenType é o token_type dos access tokens do SimpleJWT
const AccessTokenType = "access"

// Claims são as claims do access token emitido pela API do blog
type Claims struct {
	TokenType string `json:"token_type"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsStaff   *bool  `json:"is_staff"`
	jwt.RegisteredClaims
}
