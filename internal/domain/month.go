package domain

import (
	"fmt"
	"strings"
)

// Month representa um dos 12 códigos de mês (Jan..Dec) em ordem de calendário
type Month int

const (
	Jan Month = iota + 1
	Feb
	Mar
	Apr
	May
	Jun
	Jul
	Aug
	Sep
	Oct
	Nov
	Dec
)

// DefaultWindow é o tamanho padrão das janelas de tendência e projeção
const DefaultWindow = 6

var monthCodes = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Months retorna os 12 meses em ordem de calendário
func Months() []Month {
	months := make([]Month, 0, len(monthCodes))
	for i := range monthCodes {
		months = append(months, Month(i+1))
	}
	return months
}

// ParseMonth converte um código de três letras (Jan..Dec) em Month
func ParseMonth(code string) (Month, error) {
	code = strings.TrimSpace(code)
	for i, c := range monthCodes {
		if strings.EqualFold(c, code) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("mês inválido: %q", code)
}

// Valid indica se o valor está entre Jan e Dec
func (m Month) Valid() bool {
	return m >= Jan && m <= Dec
}

// String retorna o código de três letras do mês; valores inválidos viram "Month(n)"
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthCodes[m-1]
}

// Next retorna o mês seguinte, voltando para Jan depois de Dec
func (m Month) Next() Month {
	return Month(int(m)%12 + 1)
}

// Prev retorna o mês anterior, voltando para Dec antes de Jan
func (m Month) Prev() Month {
	return Month((int(m)+10)%12 + 1)
}

// MarshalText serializa o mês como código de três letras, inclusive em chaves de mapa
func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("mês inválido: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText aceita o código de três letras sem diferenciar maiúsculas
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
