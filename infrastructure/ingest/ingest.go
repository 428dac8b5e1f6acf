// Package ingest converte os arquivos de vendas enviados (CSV ou XLSX) em tabelas tipadas
package ingest

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/dataset"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado, use .csv ou .xlsx")
	ErrNoHeader          = errors.New("arquivo sem linha de cabeçalho")
)

// Read escolhe o leitor pela extensão do arquivo
func Read(filename string, r io.Reader) (dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r, "")
	default:
		return dataset.Table{}, ErrUnsupportedFormat
	}
}

// toTable descarta linhas totalmente vazias e separa o cabeçalho dos dados
func toTable(rows [][]string) (dataset.Table, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		records = append(records, row)
	}

	if len(records) == 0 {
		return dataset.Table{}, ErrNoHeader
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return dataset.NewTable(header, records[1:]), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
