package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchema          = errors.New("coluna obrigatória ausente")
	ErrType            = errors.New("tipo de coluna inválido")
	ErrEmptyTable      = errors.New("arquivo sem linhas de dados")
	ErrDuplicatePolicy = errors.New("política de duplicidade inválida")
)

// SchemaError indica que colunas obrigatórias não estão presentes no arquivo
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSchema.Error(), strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// TypeError indica que uma coluna não respeita o tipo exigido.
// Row é preenchido apenas quando o problema é um valor específico (ex: mês desconhecido).
type TypeError struct {
	Column   string
	Expected string
	Found    string
	Row      int
}

func (e *TypeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: coluna %s linha %d esperava %s, encontrado %q", ErrType.Error(), e.Column, e.Row, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: coluna %s esperava %s, encontrado %s", ErrType.Error(), e.Column, e.Expected, e.Found)
}

func (e *TypeError) Unwrap() error {
	return ErrType
}
