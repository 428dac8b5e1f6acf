package reporting

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetTargets    = "Targets"
	sheetHistory    = "History"
	sheetProjection = "Projection"
	sheetWarnings   = "Warnings"
)

// WriteXLSX grava o relatório como planilha com uma aba para metas/KPIs,
// histórico, projeção e avisos.
func WriteXLSX(report *domain.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTargets); err != nil {
		return fmt.Errorf("erro ao renomear aba: %w", err)
	}
	for _, sheet := range []string{sheetHistory, sheetProjection, sheetWarnings} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("erro ao criar aba %s: %w", sheet, err)
		}
	}

	targetRows := [][]any{{
		"Entity", "Base", "Optimistic", "Conservative", "Current Sales", "YoY", "MoM", "Variance", "Growth Rate %",
	}}
	historyRows := [][]any{{"Entity", "Month", "Year", "Sales"}}
	projectionRows := [][]any{{"Entity", "Month", "Year", "Projected", "Optimistic", "Conservative"}}
	warningRows := [][]any{{"Entity", "Year", "Message"}}

	for _, e := range report.Entities {
		targetRows = append(targetRows, []any{
			e.Entity, e.Targets.Base, e.Targets.Optimistic, e.Targets.Conservative,
			e.KPIs.CurrentMonthSales, e.KPIs.YoYGrowthLabel, e.KPIs.MoMGrowthLabel, e.KPIs.VarianceLabel, e.GrowthRate,
		})
		for _, h := range e.History {
			historyRows = append(historyRows, []any{e.Entity, h.Month, h.Year, h.Sales})
		}
		for _, p := range e.Projection {
			projectionRows = append(projectionRows, []any{e.Entity, p.Month, p.Year, p.Projected, p.Optimistic, p.Conservative})
		}
	}

	for _, warn := range report.Warnings {
		warningRows = append(warningRows, []any{warn.Entity, warn.Year, warn.Message})
	}

	sheets := map[string][][]any{
		sheetTargets:    targetRows,
		sheetHistory:    historyRows,
		sheetProjection: projectionRows,
		sheetWarnings:   warningRows,
	}
	for sheet, rows := range sheets {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao preencher %s linha %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
