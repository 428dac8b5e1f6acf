package domain

import "time"

// Report é a estrutura exportada para download (JSON/XLSX)
type Report struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Parameters  ReportParams   `json:"parameters"`
	Entities    []ReportEntity `json:"entities"`
	Warnings    []Warning      `json:"warnings"`
}

type ReportParams struct {
	BaseYears       []int    `json:"base_years"`
	OptimisticPct   float64  `json:"optimistic_pct"`
	ConservativePct float64  `json:"conservative_pct"`
	Month           string   `json:"month"`
	Year            int      `json:"year"`
	Mode            string   `json:"mode"`
	Sites           []string `json:"sites"`
}

// ReportKPIs são os indicadores principais de uma entidade no período selecionado
type ReportKPIs struct {
	CurrentMonthSales  float64 `json:"current_month_sales"`
	YoYGrowth          float64 `json:"yoy_growth"`
	YoYGrowthLabel     string  `json:"yoy_growth_label"`
	MoMGrowth          float64 `json:"mom_growth"`
	MoMGrowthLabel     string  `json:"mom_growth_label"`
	VarianceFromTarget float64 `json:"variance_from_target"`
	VarianceLabel      string  `json:"variance_from_target_label"`
}

type ReportHistoryPoint struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Sales float64 `json:"sales"`
}

type ReportTargets struct {
	Base         float64 `json:"base"`
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
}

type ReportProjectionPoint struct {
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	Projected    float64 `json:"projected"`
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
}

type ReportTopMonth struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Sales float64 `json:"sales"`
}

// ReportEntity contém KPIs, histórico, metas e projeção de uma entidade
type ReportEntity struct {
	Entity     string                  `json:"entity"`
	KPIs       ReportKPIs              `json:"kpis"`
	TopMonth   *ReportTopMonth         `json:"top_month,omitempty"`
	History    []ReportHistoryPoint    `json:"history"`
	Targets    ReportTargets           `json:"targets"`
	GrowthRate float64                 `json:"growth_rate"`
	Projection []ReportProjectionPoint `json:"projection"`
}
