package domain

// ProjectionPoint é a projeção de metas para um mês futuro
type ProjectionPoint struct {
	Month        Month   `json:"month"`
	Year         int     `json:"year"`
	Projected    float64 `json:"projected"`
	Optimistic   float64 `json:"optimistic"`
	Conservative float64 `json:"conservative"`
}

// Projection é a sequência ordenada de projeções do horizonte
type Projection []ProjectionPoint
