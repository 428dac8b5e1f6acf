// Package projecting extrapola as metas para os próximos meses a partir da taxa média
// de crescimento da série recente.
package projecting

import (
	"math"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// GrowthRate retorna a média das variações percentuais entre pontos consecutivos da
// série, em decimal (0.05 = 5%). Pares com valor anterior 0 não geram variação; sem
// nenhuma variação calculável a taxa é 0.
func GrowthRate(series []float64) float64 {
	sum := 0.0
	deltas := 0
	for i := 1; i < len(series); i++ {
		previous := series[i-1]
		if previous == 0 {
			continue
		}
		sum += (series[i] - previous) / previous * 100
		deltas++
	}

	if deltas == 0 {
		return 0
	}

	return sum / float64(deltas) / 100
}

// Project compõe a taxa de crescimento sobre a meta base para cada mês do horizonte.
// Os valores são arredondados para o inteiro mais próximo.
func Project(
	baseTarget float64,
	series []float64,
	optimisticPct, conservativePct float64,
	month domain.Month,
	year int,
	horizon int,
) domain.Projection {
	rate := GrowthRate(series)
	periods := domain.ForwardWindow(month, year, horizon)

	projection := make(domain.Projection, 0, len(periods))
	for i, p := range periods {
		projected := baseTarget * math.Pow(1+rate, float64(i+1))
		projection = append(projection, domain.ProjectionPoint{
			Month:        p.Month,
			Year:         p.Year,
			Projected:    math.Round(projected),
			Optimistic:   math.Round(projected * (1 + optimisticPct/100)),
			Conservative: math.Round(projected * (1 - conservativePct/100)),
		})
	}

	return projection
}
