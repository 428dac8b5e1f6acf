// Package chart desenha o gráfico de tendência e projeção de uma entidade
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoSeries = errors.New("série histórica vazia")

var (
	historyColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	projectedColor    = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	optimisticColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	conservativeColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

const (
	width  = 10 * vg.Inch
	height = 5 * vg.Inch
)

// RenderTrend gera um PNG com a série histórica seguida das linhas projetada, otimista e
// conservadora. As linhas da projeção partem do último ponto histórico.
func RenderTrend(title string, periods []domain.Period, series []float64, projection domain.Projection) ([]byte, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	if len(periods) != len(series) {
		return nil, fmt.Errorf("períodos (%d) e valores (%d) com tamanhos diferentes", len(periods), len(series))
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Vendas"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	ticks := make([]plot.Tick, 0, len(periods)+len(projection))
	history := make(plotter.XYs, len(series))
	for i, v := range series {
		history[i] = plotter.XY{X: float64(i), Y: v}
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: periods[i].String()})
	}

	if err := addLine(p, "Histórico", history, historyColor, false); err != nil {
		return nil, err
	}

	if len(projection) > 0 {
		last := history[len(history)-1]
		projected := plotter.XYs{last}
		optimistic := plotter.XYs{last}
		conservative := plotter.XYs{last}

		for i, point := range projection {
			x := float64(len(series) + i)
			projected = append(projected, plotter.XY{X: x, Y: point.Projected})
			optimistic = append(optimistic, plotter.XY{X: x, Y: point.Optimistic})
			conservative = append(conservative, plotter.XY{X: x, Y: point.Conservative})
			ticks = append(ticks, plot.Tick{Value: x, Label: domain.Period{Month: point.Month, Year: point.Year}.String()})
		}

		if err := addLine(p, "Projeção", projected, projectedColor, true); err != nil {
			return nil, err
		}
		if err := addLine(p, "Otimista", optimistic, optimisticColor, true); err != nil {
			return nil, err
		}
		if err := addLine(p, "Conservadora", conservative, conservativeColor, true); err != nil {
			return nil, err
		}
	}

	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar gráfico: %w", err)
	}

	buf := &bytes.Buffer{}
	if _, err := wt.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PNG: %w", err)
	}

	return buf.Bytes(), nil
}

func addLine(p *plot.Plot, name string, points plotter.XYs, c color.Color, dashed bool) error {
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("erro ao criar linha %s: %w", name, err)
	}

	line.Color = c
	line.Width = vg.Points(2)
	if dashed {
		line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	}

	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}
