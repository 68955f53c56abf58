package authorizing

import (
	"errors"
	"fmt"
)

var (
	// Erros de sessão
	ErrMissingToken = errors.New("token de acesso ausente")
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrNotStaff     = errors.New("usuário sem privilégio de staff")

	// Erros de comunicação
	ErrSessionUnavailable = errors.New("não foi possível obter a sessão")
)

// AuthError é um erro com contexto adicional para a guarda de acesso
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsSessionRejected indica que a sessão não existe ou foi recusada, ou seja,
// o usuário deve ser tratado como sem flag de staff
func IsSessionRejected(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
