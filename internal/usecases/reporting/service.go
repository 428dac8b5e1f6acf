// Package reporting monta o relatório exportável a partir do último cálculo
package reporting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/trending"
)

// Casas decimais mantidas nos valores monetários exportados
const exportPrecision = 2

// Normalize prepara valores monetários (vendas, metas, projeções) para serialização:
// NaN e infinitos viram 0 e o valor é arredondado para centavos.
func Normalize(v float64) float64 {
	return decimal.NewFromFloat(Finite(v)).Round(exportPrecision).InexactFloat64()
}

// Finite prepara percentuais para serialização sem arredondar: NaN e infinitos viram 0.
// O rótulo formatado acompanha o valor para exibição.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Assemble monta o relatório com KPIs, histórico, metas e projeção de cada entidade
func Assemble(id string, result *domain.CalculationResult, generatedAt time.Time) *domain.Report {
	params := result.Params

	report := &domain.Report{
		ID:          id,
		GeneratedAt: generatedAt,
		Parameters: domain.ReportParams{
			BaseYears:       append([]int{}, params.BaseYears...),
			OptimisticPct:   Finite(params.OptimisticPct),
			ConservativePct: Finite(params.ConservativePct),
			Month:           params.Month.String(),
			Year:            params.Year,
			Mode:            string(params.Mode),
			Sites:           append([]string{}, params.Sites...),
		},
		Entities: make([]domain.ReportEntity, 0, len(result.Entities)),
		Warnings: append([]domain.Warning{}, result.Warnings...),
	}

	for _, entity := range result.Entities {
		report.Entities = append(report.Entities, assembleEntity(entity))
	}

	return report
}

func assembleEntity(entity domain.EntityResult) domain.ReportEntity {
	trend := entity.Trend
	variance := trending.Growth(trend.CurrentSales, entity.Target.Base)

	out := domain.ReportEntity{
		Entity: entity.Entity,
		KPIs: domain.ReportKPIs{
			CurrentMonthSales:  Normalize(trend.CurrentSales),
			YoYGrowth:          Finite(float64(trend.YoYGrowth)),
			YoYGrowthLabel:     trend.YoYGrowth.String(),
			MoMGrowth:          Finite(float64(trend.MoMGrowth)),
			MoMGrowthLabel:     trend.MoMGrowth.String(),
			VarianceFromTarget: Finite(float64(variance)),
			VarianceLabel:      variance.String(),
		},
		History: make([]domain.ReportHistoryPoint, 0, len(trend.TrailingSeries)),
		Targets: domain.ReportTargets{
			Base:         Normalize(entity.Target.Base),
			Optimistic:   Normalize(entity.Target.Optimistic),
			Conservative: Normalize(entity.Target.Conservative),
		},
		GrowthRate: Finite(entity.GrowthRate * 100),
		Projection: make([]domain.ReportProjectionPoint, 0, len(entity.Projection)),
	}

	if trend.TopMonth != nil {
		out.TopMonth = &domain.ReportTopMonth{
			Month: trend.TopMonth.Month.String(),
			Year:  trend.TopMonth.Year,
			Sales: Normalize(trend.TopMonth.Sales),
		}
	}

	for i, sales := range trend.TrailingSeries {
		point := domain.ReportHistoryPoint{Sales: Normalize(sales)}
		if i < len(trend.TrailingPeriod) {
			point.Month = trend.TrailingPeriod[i].Month.String()
			point.Year = trend.TrailingPeriod[i].Year
		}
		out.History = append(out.History, point)
	}

	for _, p := range entity.Projection {
		out.Projection = append(out.Projection, domain.ReportProjectionPoint{
			Month:        p.Month.String(),
			Year:         p.Year,
			Projected:    Normalize(p.Projected),
			Optimistic:   Normalize(p.Optimistic),
			Conservative: Normalize(p.Conservative),
		})
	}

	return out
}
