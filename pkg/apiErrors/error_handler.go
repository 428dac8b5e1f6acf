package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes (ex.: nenhum site selecionado)
	ErrInvalidFormat       = "VAL_003" // Formato de dados ou parâmetro de cálculo inválido
	ErrUploadTooLarge      = "VAL_004" // Arquivo acima do limite configurado
	ErrTooManyRequests     = "VAL_005" // Limite de envios excedido
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não suportado pela rota

	// Erros do conjunto de dados (3000-3999)
	ErrSchema           = "DATA_001" // Colunas obrigatórias ausentes
	ErrColumnType       = "DATA_002" // Coluna com tipo incompatível
	ErrInsufficientData = "DATA_003" // Nenhum ano base com dados
	ErrNoDataset        = "DATA_004" // Nenhum conjunto de dados carregado
	ErrNoCalculation    = "DATA_005" // Nenhum cálculo realizado
	ErrNotFound         = "DATA_006" // Site ou entidade inexistente

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrJobRunning     = "SRV_002" // Job agendado já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUploadTooLarge:      http.StatusRequestEntityTooLarge,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSchema:              http.StatusBadRequest,
	ErrColumnType:          http.StatusBadRequest,
	ErrInsufficientData:    http.StatusUnprocessableEntity,
	ErrNoDataset:           http.StatusConflict,
	ErrNoCalculation:       http.StatusConflict,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrJobRunning:          http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
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
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
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
