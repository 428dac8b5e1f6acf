// Package targeting calcula as metas base, otimista e conservadora a partir dos anos base
package targeting

import (
	"fmt"
	"math"

	"github.com/vfg2006/sales-target-api/internal/domain"
)

// SalesSource é a fonte de observações consultada pelo cálculo de metas
type SalesSource interface {
	Lookup(site string, year int, month domain.Month) float64
	Has(site string, year int, month domain.Month) bool
}

// RoundUpToThousand arredonda para cima até o próximo múltiplo de mil
func RoundUpToThousand(x float64) float64 {
	return math.Ceil(x/1000) * 1000
}

// Targets aplica média, percentuais e arredondamento sobre a série histórica.
// A série não pode estar vazia.
func Targets(values []float64, optimisticPct, conservativePct float64) domain.TargetResult {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	base := sum / float64(len(values))

	return domain.TargetResult{
		Base:         RoundUpToThousand(base),
		Optimistic:   RoundUpToThousand(base * (1 + optimisticPct/100)),
		Conservative: RoundUpToThousand(base * (1 - conservativePct/100)),
	}
}

// ComputePerSite calcula as metas de cada site. Sites sem nenhuma observação nos anos
// base ficam fora do resultado e geram um aviso de dados insuficientes.
func ComputePerSite(
	src SalesSource,
	sites []string,
	baseYears []int,
	month domain.Month,
	optimisticPct, conservativePct float64,
) (map[string]domain.TargetResult, []domain.Warning) {
	results := make(map[string]domain.TargetResult, len(sites))
	warnings := make([]domain.Warning, 0)

	for _, site := range sites {
		history := make([]float64, 0, len(baseYears))
		for _, year := range baseYears {
			if !src.Has(site, year, month) {
				warnings = append(warnings, missingYearWarning(site, year, month))
				continue
			}
			history = append(history, src.Lookup(site, year, month))
		}

		if len(history) == 0 {
			err := &InsufficientDataError{Entity: site, Month: month.String()}
			warnings = append(warnings, domain.Warning{Entity: site, Message: err.Error()})
			continue
		}

		results[site] = Targets(history, optimisticPct, conservativePct)
	}

	return results, warnings
}

// ComputeCombined soma os sites selecionados em cada ano base. Um ano só entra na série
// quando todos os sites possuem dados para o mês; anos parciais são descartados.
func ComputeCombined(
	src SalesSource,
	sites []string,
	baseYears []int,
	month domain.Month,
	optimisticPct, conservativePct float64,
) (domain.TargetResult, []domain.Warning, error) {
	warnings := make([]domain.Warning, 0)
	history := make([]float64, 0, len(baseYears))

	for _, year := range baseYears {
		total := 0.0
		complete := len(sites) > 0
		for _, site := range sites {
			if !src.Has(site, year, month) {
				warnings = append(warnings, missingYearWarning(site, year, month))
				complete = false
				continue
			}
			total += src.Lookup(site, year, month)
		}

		if !complete {
			warnings = append(warnings, domain.Warning{
				Entity:  domain.CombinedEntity,
				Year:    year,
				Message: fmt.Sprintf("ano %d descartado: nem todos os sites possuem dados de %s", year, month),
			})
			continue
		}

		history = append(history, total)
	}

	if len(history) == 0 {
		return domain.TargetResult{}, warnings, &InsufficientDataError{Entity: domain.CombinedEntity, Month: month.String()}
	}

	return Targets(history, optimisticPct, conservativePct), warnings, nil
}

func missingYearWarning(site string, year int, month domain.Month) domain.Warning {
	return domain.Warning{
		Entity:  site,
		Year:    year,
		Message: fmt.Sprintf("sem dados de %s %d, ignorando", month, year),
	}
}
