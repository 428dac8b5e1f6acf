package analyzing

import (
	"errors"
	"fmt"
)

var (
	// Erros de configuração do cálculo
	ErrConfig           = errors.New("parâmetro de cálculo inválido")
	ErrMissingSelection = errors.New("nenhum site selecionado")
	ErrUnknownSite      = errors.New("site não encontrado no conjunto de dados")

	// Erros de estado da sessão
	ErrNoDataset     = errors.New("nenhum conjunto de dados carregado")
	ErrNoCalculation = errors.New("nenhum cálculo realizado")
	ErrUnknownEntity = errors.New("entidade não encontrada no último cálculo")
)

// ConfigError é o erro com contexto do parâmetro inválido
type ConfigError struct {
	Field   string
	Value   string
	Details string
}

func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s=%q: %s", ErrConfig.Error(), e.Field, e.Value, e.Details)
	}
	return fmt.Sprintf("%s: %s=%q", ErrConfig.Error(), e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// IsSelectionError verifica se o erro está relacionado à seleção de sites
func IsSelectionError(err error) bool {
	return errors.Is(err, ErrMissingSelection) || errors.Is(err, ErrUnknownSite)
}
