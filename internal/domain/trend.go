package domain

import "fmt"

// GrowthMetric é uma variação percentual (ex: 12.5 = 12,5%)
type GrowthMetric float64

// String formata a variação com uma casa decimal e o sufixo %
func (g GrowthMetric) String() string {
	return fmt.Sprintf("%.1f%%", float64(g))
}

// TopMonth representa o mês de maior venda de um site
type TopMonth struct {
	Month Month   `json:"month"`
	Year  int     `json:"year"`
	Sales float64 `json:"sales"`
}

// SiteTrend agrupa os indicadores de tendência de um site para o período selecionado
type SiteTrend struct {
	Site           string       `json:"site"`
	CurrentSales   float64      `json:"current_sales"`
	TopMonth       *TopMonth    `json:"top_month,omitempty"`
	TrailingPeriod []Period     `json:"trailing_periods"`
	TrailingSeries []float64    `json:"trailing_series"`
	YoYGrowth      GrowthMetric `json:"yoy_growth"`
	MoMGrowth      GrowthMetric `json:"mom_growth"`
}
