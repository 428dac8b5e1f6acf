package ingest

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX lê a planilha informada, ou a primeira da pasta de trabalho quando sheet é vazio
func ReadXLSX(r io.Reader, sheet string) (dataset.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("erro ao abrir XLSX: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return dataset.Table{}, ErrNoHeader
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("erro ao ler planilha %s: %w", sheet, err)
	}

	return toTable(rows)
}
