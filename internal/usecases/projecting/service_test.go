package projecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{name: "Série constante", series: []float64{500, 500, 500, 500, 500, 500}, expected: 0},
		{name: "Crescimento de 10% ao mês", series: []float64{100, 110, 121}, expected: 0.10},
		{name: "Zeros anteriores são ignorados", series: []float64{0, 0, 100, 150, 0, 0}, expected: -0.25},
		{name: "Série toda zerada", series: []float64{0, 0, 0, 0, 0, 0}, expected: 0},
		{name: "Apenas um ponto", series: []float64{100}, expected: 0},
		{name: "Série vazia", series: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GrowthRate(tt.series), 1e-9)
		})
	}
}

func TestProject(t *testing.T) {
	t.Run("Série constante - projeção igual à meta base", func(t *testing.T) {
		projection := Project(110000, []float64{500, 500, 500, 500, 500, 500}, 5, 10, domain.Mar, 2025, domain.DefaultWindow)
		require.Len(t, projection, domain.DefaultWindow)

		for _, p := range projection {
			assert.Equal(t, 110000.0, p.Projected)
			assert.Equal(t, 115500.0, p.Optimistic)
			assert.Equal(t, 99000.0, p.Conservative)
		}
		assert.Equal(t, domain.Apr, projection[0].Month)
		assert.Equal(t, domain.Sep, projection[5].Month)
	})

	t.Run("Crescimento composto com virada de ano", func(t *testing.T) {
		projection := Project(1000, []float64{100, 110, 121}, 0, 0, domain.Nov, 2025, 3)
		require.Len(t, projection, 3)

		assert.Equal(t, domain.ProjectionPoint{Month: domain.Dec, Year: 2025, Projected: 1100, Optimistic: 1100, Conservative: 1100}, projection[0])
		assert.Equal(t, domain.ProjectionPoint{Month: domain.Jan, Year: 2026, Projected: 1210, Optimistic: 1210, Conservative: 1210}, projection[1])
		assert.Equal(t, domain.ProjectionPoint{Month: domain.Feb, Year: 2026, Projected: 1331, Optimistic: 1331, Conservative: 1331}, projection[2])
	})

	t.Run("Arredondamento para inteiro, não para milhar", func(t *testing.T) {
		projection := Project(1000, []float64{1000, 1000}, 0.1, 0, domain.Jan, 2025, 1)
		require.Len(t, projection, 1)
		assert.Equal(t, 1000.0, projection[0].Projected)
		assert.Equal(t, 1001.0, projection[0].Optimistic)
	})

	t.Run("Série sem variação calculável - taxa zero", func(t *testing.T) {
		projection := Project(7000, []float64{0, 0, 0, 0, 0, 900}, 0, 0, domain.Jun, 2025, 2)
		for _, p := range projection {
			assert.Equal(t, 7000.0, p.Projected)
		}
	})
}
