package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vfg2006/sales-target-api/internal/dataset"
)

// ReadCSV lê um CSV com cabeçalho na primeira linha
func ReadCSV(r io.Reader) (dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return dataset.Table{}, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	return toTable(rows)
}
