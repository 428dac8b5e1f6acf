package domain

// CombinedEntity é o nome da pseudo-entidade usada no modo combinado
const CombinedEntity = "Combined"

// CalculationMode define se as metas são calculadas por site ou somando todos os sites
type CalculationMode string

const (
	PerSiteMode  CalculationMode = "per_site"
	CombinedMode CalculationMode = "combined"
)

// TargetResult contém as metas calculadas para uma entidade (site ou Combined)
type TargetResult struct {
	Base         float64 `json:"base"`
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
}

// Warning representa um aviso recuperável gerado durante o cálculo
type Warning struct {
	Entity  string `json:"entity"`
	Year    int    `json:"year,omitempty"`
	Message string `json:"message"`
}
