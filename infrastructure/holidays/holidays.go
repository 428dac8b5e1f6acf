// Package holidays mantém a tabela de feriados públicos exibida junto ao período analisado
package holidays

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"gopkg.in/yaml.v2"
)

//go:embed holidays_za.yaml
var defaultTable []byte

// Table associa cada ano à lista de feriados no formato "Mar 21 (Human Rights Day)"
type Table struct {
	byYear map[int][]string
}

// Default retorna a tabela embarcada de feriados da África do Sul (2021-2025)
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load lê a tabela do arquivo YAML informado; caminho vazio usa a tabela embarcada
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de feriados: %w", err)
	}

	return Parse(data)
}

// Parse lê o YAML no formato ano → lista de feriados
func Parse(data []byte) (*Table, error) {
	byYear := make(map[int][]string)
	if err := yaml.Unmarshal(data, &byYear); err != nil {
		return nil, fmt.Errorf("erro ao interpretar tabela de feriados: %w", err)
	}

	return &Table{byYear: byYear}, nil
}

// ForMonth retorna os feriados do ano que começam pelo mês informado
func (t *Table) ForMonth(year int, month domain.Month) []string {
	prefix := month.String() + " "

	result := make([]string, 0)
	for _, holiday := range t.byYear[year] {
		if strings.HasPrefix(holiday, prefix) {
			result = append(result, holiday)
		}
	}
	return result
}

// Years lista os anos cobertos pela tabela em ordem crescente
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.byYear))
	for year := range t.byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
