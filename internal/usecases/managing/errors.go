package managing

import (
	"errors"

	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
)

var (
	ErrResourceNotFound     = errors.New("recurso desconhecido")
	ErrOperationUnsupported = errors.New("operação não disponível para o recurso")
	ErrInvalidInput         = errors.New("formulário inválido")
)

func unsupported(resource, operation string) error {
	return &listing.MutationError{
		Err:      ErrOperationUnsupported,
		Code:     apiErrors.ErrNotSupported,
		Resource: resource,
		Details:  operation,
	}
}

func invalidInput(resource string, err error) error {
	return &listing.MutationError{
		Err:      ErrInvalidInput,
		Code:     apiErrors.ErrInvalidFormat,
		Resource: resource,
		Details:  err.Error(),
	}
}
