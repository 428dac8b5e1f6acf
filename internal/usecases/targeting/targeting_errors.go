package targeting

import (
	"errors"
	"fmt"
)

// ErrInsufficientData indica que uma entidade não possui nenhuma observação utilizável
var ErrInsufficientData = errors.New("dados insuficientes para o cálculo da meta")

// InsufficientDataError é o erro com contexto da entidade sem dados
type InsufficientDataError struct {
	Entity string
	Month  string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInsufficientData.Error(), e.Entity, e.Month)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}
