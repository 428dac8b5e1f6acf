// Package trending calcula mês de maior venda, série dos últimos meses e variações YoY/MoM
package trending

import (
	"github.com/vfg2006/sales-target-api/internal/domain"
)

// SalesSource é a fonte de observações consultada pela análise de tendência
type SalesSource interface {
	Lookup(site string, year int, month domain.Month) float64
	Entries(site string) []domain.Observation
}

// TopMonth retorna a observação de maior venda do site. Em caso de empate prevalece a
// primeira encontrada na ordem ano crescente e depois ordem de inserção.
func TopMonth(src SalesSource, site string) (domain.TopMonth, bool) {
	var (
		top   domain.TopMonth
		found bool
	)

	for _, obs := range src.Entries(site) {
		if !found || obs.Sales > top.Sales {
			top = domain.TopMonth{Month: obs.Month, Year: obs.Year, Sales: obs.Sales}
			found = true
		}
	}

	return top, found
}

// TrailingSeries retorna as vendas dos 6 meses que terminam no mês âncora,
// alinhadas com domain.TrailingWindow. Meses sem dados valem 0.
func TrailingSeries(src SalesSource, site string, month domain.Month, year int) []float64 {
	window := domain.TrailingWindow(month, year, domain.DefaultWindow)
	series := make([]float64, len(window))
	for i, p := range window {
		series[i] = src.Lookup(site, p.Year, p.Month)
	}
	return series
}

// YoYGrowth compara o mês com o mesmo mês do ano anterior
func YoYGrowth(src SalesSource, site string, month domain.Month, year int) domain.GrowthMetric {
	current := src.Lookup(site, year, month)
	previous := src.Lookup(site, year-1, month)
	return Growth(current, previous)
}

// MoMGrowth compara o mês com o mês imediatamente anterior (Dec do ano anterior para Jan)
func MoMGrowth(src SalesSource, site string, month domain.Month, year int) domain.GrowthMetric {
	prev := domain.Period{Month: month, Year: year}.Prev()
	current := src.Lookup(site, year, month)
	previous := src.Lookup(site, prev.Year, prev.Month)
	return Growth(current, previous)
}

// Growth retorna a variação percentual de previous para current. Quando previous é 0
// o resultado é 0.
func Growth(current, previous float64) domain.GrowthMetric {
	if previous == 0 {
		return 0
	}
	return domain.GrowthMetric((current - previous) / previous * 100)
}

// Analyze agrupa todos os indicadores de tendência de um site para o período selecionado
func Analyze(src SalesSource, site string, month domain.Month, year int) domain.SiteTrend {
	trend := domain.SiteTrend{
		Site:           site,
		CurrentSales:   src.Lookup(site, year, month),
		TrailingPeriod: domain.TrailingWindow(month, year, domain.DefaultWindow),
		TrailingSeries: TrailingSeries(src, site, month, year),
		YoYGrowth:      YoYGrowth(src, site, month, year),
		MoMGrowth:      MoMGrowth(src, site, month, year),
	}

	if top, ok := TopMonth(src, site); ok {
		trend.TopMonth = &top
	}

	return trend
}
