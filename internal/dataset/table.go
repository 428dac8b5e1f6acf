package dataset

import (
	"strconv"
	"strings"
)

// ColumnKind é o tipo inferido de uma coluna inteira do arquivo
type ColumnKind int

const (
	KindString ColumnKind = iota
	KindInteger
	KindFloat
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Column guarda os valores brutos de uma coluna e o tipo inferido para ela inteira
type Column struct {
	Name   string
	Kind   ColumnKind
	Values []string
}

// Table é a representação tabular de um arquivo de vendas, já com os tipos das colunas inferidos
type Table struct {
	Columns []Column
}

// NewTable monta a tabela a partir do cabeçalho e das linhas lidas do arquivo.
// Linhas curtas são completadas com células vazias e células excedentes são ignoradas.
func NewTable(header []string, records [][]string) Table {
	columns := make([]Column, len(header))
	for i, name := range header {
		values := make([]string, len(records))
		for r, record := range records {
			if i < len(record) {
				values[r] = strings.TrimSpace(record[i])
			}
		}

		columns[i] = Column{
			Name:   strings.TrimSpace(name),
			Kind:   InferKind(values),
			Values: values,
		}
	}

	return Table{Columns: columns}
}

// Column retorna a primeira coluna com o nome informado
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Len retorna a quantidade de linhas de dados
func (t Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// InferKind infere o tipo de uma coluna: integer se todas as células são inteiras,
// float se todas são numéricas e string caso contrário. Células vazias tornam a
// coluna numérica em float, e uma coluna totalmente vazia é float.
func InferKind(values []string) ColumnKind {
	kind := KindInteger
	nonEmpty := 0

	for _, v := range values {
		if v == "" {
			if kind == KindInteger {
				kind = KindFloat
			}
			continue
		}

		nonEmpty++
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			kind = KindFloat
			continue
		}
		return KindString
	}

	if nonEmpty == 0 {
		return KindFloat
	}

	return kind
}
