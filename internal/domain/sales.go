// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Observation representa a venda de um site em um mês de um ano
type Observation struct {
	Site  string  `json:"site"`
	Year  int     `json:"year"`
	Month Month   `json:"month"`
	Sales float64 `json:"sales"`
}

// DatasetSummary descreve o conjunto de dados carregado na sessão
type DatasetSummary struct {
	ID              string    `json:"id"`
	Source          string    `json:"source,omitempty"`
	Rows            int       `json:"rows"`
	Observations    int       `json:"observations"`
	Sites           []string  `json:"sites"`
	Years           []int     `json:"years"`
	DuplicatePolicy string    `json:"duplicate_policy"`
	LoadedAt        time.Time `json:"loaded_at"`
}
