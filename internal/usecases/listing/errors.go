package listing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrValidation = errors.New("dados inválidos")

	// Erros devolvidos pela API
	ErrItemNotFound = errors.New("item não encontrado")
	ErrUnauthorized = errors.New("sessão recusada pela API do blog")
	ErrRemote       = errors.New("erro na API do blog")

	// Erros de comunicação
	ErrCommunication = errors.New("falha de comunicação com a API do blog")
)

// MutationError é o erro de uma mutação com contexto para a resposta da API
type MutationError struct {
	Err      error       // Erro base
	Code     string      // Código de erro para API
	Resource string      // Recurso envolvido
	Key      string      // Chave do item (quando aplicável)
	Fields   FieldErrors // Erros por campo (locais ou do servidor)
	Details  string      // Detalhes adicionais
}

func (e *MutationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria o erro de validação com os erros por campo
func NewValidationError(resource string, fields FieldErrors) *MutationError {
	return &MutationError{
		Err:      ErrValidation,
		Code:     apiErrors.ErrFieldValidation,
		Resource: resource,
		Fields:   fields,
	}
}

// translateRemoteError converte o erro do cliente REST no erro da mutação.
// Só respostas de validação (400/422) com erros por campo viram a mesma
// estrutura da validação local.
func translateRemoteError(resource, key string, err error) *MutationError {
	var respErr *blogclient.ResponseError
	if !errors.As(err, &respErr) {
		return &MutationError{
			Err:      ErrCommunication,
			Code:     apiErrors.ErrCommunication,
			Resource: resource,
			Key:      key,
			Details:  err.Error(),
		}
	}

	mErr := &MutationError{
		Err:      ErrRemote,
		Code:     apiErrors.ErrExternalService,
		Resource: resource,
		Key:      key,
		Details:  respErr.Body.Message(),
	}

	switch {
	case respErr.IsUnauthorized():
		mErr.Err = ErrUnauthorized
		mErr.Code = apiErrors.ErrInsufficientPrivilege
	case respErr.IsNotFound():
		mErr.Err = ErrItemNotFound
		mErr.Code = apiErrors.ErrItemNotFound
	case respErr.IsValidation():
		if fields := respErr.FieldErrors(); len(fields) > 0 {
			vErr := NewValidationError(resource, FieldErrors(fields))
			vErr.Key = key
			return vErr
		}
	}

	return mErr
}
