package domain

// CalculationParams são os parâmetros já validados de um cálculo de metas
type CalculationParams struct {
	BaseYears       []int           `json:"base_years"`
	OptimisticPct   float64         `json:"optimistic_pct"`
	ConservativePct float64         `json:"conservative_pct"`
	Month           Month           `json:"month"`
	Year            int             `json:"year"`
	Mode            CalculationMode `json:"mode"`
	Sites           []string        `json:"sites"`
}

// EntityResult agrupa metas, tendência e projeção de uma entidade analisada
type EntityResult struct {
	Entity     string       `json:"entity"`
	Target     TargetResult `json:"target"`
	Trend      SiteTrend    `json:"trend"`
	GrowthRate float64      `json:"growth_rate"`
	Projection Projection   `json:"projection"`
}

// CalculationResult é o resultado completo de uma ação de cálculo
type CalculationResult struct {
	Params   CalculationParams `json:"params"`
	Entities []EntityResult    `json:"entities"`
	Trends   []SiteTrend       `json:"trends"`
	Warnings []Warning         `json:"warnings"`
}
