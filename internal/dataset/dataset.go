// Package dataset mantém em memória as vendas mensais por site, indexadas por (site, ano, mês)
package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnYear  = "Year"
	ColumnMonth = "Month"
	ColumnSales = "Sales"
	ColumnSite  = "Site"
)

var requiredColumns = []string{ColumnYear, ColumnMonth, ColumnSales, ColumnSite}

// DuplicatePolicy define o que acontece quando o arquivo repete a chave (site, ano, mês)
type DuplicatePolicy string

const (
	// Overwrite mantém o último valor lido para a chave
	Overwrite DuplicatePolicy = "overwrite"
	// Accumulate soma os valores repetidos
	Accumulate DuplicatePolicy = "accumulate"
)

// ParseDuplicatePolicy valida o nome da política; vazio significa Overwrite
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", Overwrite:
		return Overwrite, nil
	case Accumulate:
		return Accumulate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrDuplicatePolicy, s)
}

type periodKey struct {
	year  int
	month domain.Month
}

// Dataset é o armazenamento de vendas site → ano → mês → valor.
// Existe no máximo um valor por (site, ano, mês).
type Dataset struct {
	sales  map[string]map[int]map[domain.Month]float64
	order  map[string][]periodKey
	sites  []string
	rows   int
	policy DuplicatePolicy
}

// New cria um dataset vazio
func New(policy DuplicatePolicy) *Dataset {
	if policy == "" {
		policy = Overwrite
	}
	return &Dataset{
		sales:  make(map[string]map[int]map[domain.Month]float64),
		order:  make(map[string][]periodKey),
		sites:  []string{},
		policy: policy,
	}
}

// Ingest valida a tabela e constrói um novo dataset. A validação de colunas e tipos
// acontece antes de qualquer linha ser processada; em caso de erro nenhum dataset é retornado.
func Ingest(table Table, policy DuplicatePolicy) (*Dataset, error) {
	columns, err := validate(table)
	if err != nil {
		return nil, err
	}

	years := columns[ColumnYear].Values
	months := columns[ColumnMonth].Values
	sales := columns[ColumnSales].Values
	sites := columns[ColumnSite].Values

	ds := New(policy)
	for i := range years {
		year, err := strconv.Atoi(years[i])
		if err != nil {
			return nil, &TypeError{Column: ColumnYear, Expected: KindInteger.String(), Found: years[i], Row: i + 1}
		}

		month, err := domain.ParseMonth(months[i])
		if err != nil {
			return nil, &TypeError{Column: ColumnMonth, Expected: "Jan..Dec", Found: months[i], Row: i + 1}
		}

		value, err := strconv.ParseFloat(sales[i], 64)
		if err != nil {
			return nil, &TypeError{Column: ColumnSales, Expected: KindFloat.String(), Found: sales[i], Row: i + 1}
		}
		// NaN e Inf passam pelo ParseFloat mas não têm representação em JSON
		if !isFinite(value) {
			return nil, &TypeError{Column: ColumnSales, Expected: finiteNumber, Found: sales[i], Row: i + 1}
		}

		ds.Set(sites[i], year, month, value)
		if !isFinite(ds.Lookup(sites[i], year, month)) {
			return nil, &TypeError{Column: ColumnSales, Expected: finiteNumber, Found: "soma acumulada fora do intervalo", Row: i + 1}
		}
		ds.rows++
	}

	return ds, nil
}

const finiteNumber = "número finito"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validate(table Table) (map[string]Column, error) {
	columns := make(map[string]Column, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		col, ok := table.Column(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[name] = col
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	if kind := columns[ColumnYear].Kind; kind != KindInteger {
		return nil, &TypeError{Column: ColumnYear, Expected: KindInteger.String(), Found: kind.String()}
	}

	if kind := columns[ColumnMonth].Kind; kind != KindString {
		return nil, &TypeError{Column: ColumnMonth, Expected: KindString.String(), Found: kind.String()}
	}

	if kind := columns[ColumnSales].Kind; kind != KindInteger && kind != KindFloat {
		return nil, &TypeError{Column: ColumnSales, Expected: "integer|float", Found: kind.String()}
	}

	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	return columns, nil
}

// Set grava o valor de venda aplicando a política de duplicidade do dataset
func (d *Dataset) Set(site string, year int, month domain.Month, sales float64) {
	years, ok := d.sales[site]
	if !ok {
		years = make(map[int]map[domain.Month]float64)
		d.sales[site] = years
		d.sites = append(d.sites, site)
	}

	months, ok := years[year]
	if !ok {
		months = make(map[domain.Month]float64)
		years[year] = months
	}

	current, exists := months[month]
	if !exists {
		d.order[site] = append(d.order[site], periodKey{year: year, month: month})
	}

	if exists && d.policy == Accumulate {
		months[month] = current + sales
		return
	}
	months[month] = sales
}

// Lookup retorna a venda registrada ou 0 quando não existe observação
func (d *Dataset) Lookup(site string, year int, month domain.Month) float64 {
	return d.sales[site][year][month]
}

// Has indica se existe observação para (site, ano, mês)
func (d *Dataset) Has(site string, year int, month domain.Month) bool {
	_, ok := d.sales[site][year][month]
	return ok
}

// HasSite indica se o site possui alguma venda registrada
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.sales[site]
	return ok
}

// Sites retorna os sites na ordem em que apareceram pela primeira vez
func (d *Dataset) Sites() []string {
	return append([]string(nil), d.sites...)
}

// Entries retorna as observações do site ordenadas por ano crescente e,
// dentro do mesmo ano, pela ordem de inserção.
func (d *Dataset) Entries(site string) []domain.Observation {
	keys := append([]periodKey(nil), d.order[site]...)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].year < keys[j].year
	})

	entries := make([]domain.Observation, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, domain.Observation{
			Site:  site,
			Year:  k.year,
			Month: k.month,
			Sales: d.sales[site][k.year][k.month],
		})
	}
	return entries
}

// Years retorna os anos distintos presentes no dataset, em ordem crescente
func (d *Dataset) Years() []int {
	seen := make(map[int]struct{})
	for _, years := range d.sales {
		for y := range years {
			seen[y] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Len retorna a quantidade de chaves (site, ano, mês) distintas
func (d *Dataset) Len() int {
	total := 0
	for _, keys := range d.order {
		total += len(keys)
	}
	return total
}

// Rows retorna a quantidade de linhas lidas na ingestão
func (d *Dataset) Rows() int {
	return d.rows
}

// Policy retorna a política de duplicidade usada na ingestão
func (d *Dataset) Policy() DuplicatePolicy {
	return d.policy
}
