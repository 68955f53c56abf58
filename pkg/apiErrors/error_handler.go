package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao painel
const (
	// Erros de autorização
	ErrUnauthenticated       = "AUTH_001" // Sessão ausente ou inválida
	ErrInsufficientPrivilege = "AUTH_002" // Usuário sem flag de staff

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrFieldValidation     = "VAL_004" // Erros por campo (cliente ou servidor)

	// Erros de recurso
	ErrResourceNotFound = "RES_001" // Recurso desconhecido
	ErrItemNotFound     = "RES_002" // Item não encontrado na API
	ErrNotSupported     = "RES_003" // Operação não disponível para o recurso

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro na API do blog
	ErrCommunication   = "SRV_004" // Falha de comunicação com a API do blog
)

var httpStatusMap = map[string]int{
	ErrUnauthenticated:       http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrFieldValidation:       http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrItemNotFound:          http.StatusNotFound,
	ErrNotSupported:          http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
