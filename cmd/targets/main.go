package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/holidays"
	"github.com/vfg2006/sales-target-api/infrastructure/ingest"
	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

var errMissingFile = errors.New("informe o arquivo de vendas com -file")

func main() {
	logrus.SetOutput(os.Stderr)
	if _, err := log.Setup(os.Getenv("LOG_LEVEL")); err != nil {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logrus.WithError(err).Error("targets: falha ao gerar relatório")
		os.Exit(1)
	}
}

// run executa um cálculo completo e escreve o relatório JSON em stdout
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("targets", flag.ContinueOnError)

	file := fs.String("file", "", "arquivo de vendas (.csv ou .xlsx)")
	baseYears := fs.String("base-years", "2021,2022,2024", "anos base separados por vírgula")
	month := fs.String("month", "", "mês selecionado (Jan..Dec)")
	year := fs.Int("year", 0, "ano selecionado")
	mode := fs.String("mode", "per_site", "per_site ou combined")
	sites := fs.String("sites", "", "sites separados por vírgula; vazio usa todos")
	optimistic := fs.Float64("optimistic", 5, "percentual otimista")
	conservative := fs.Float64("conservative", 10, "percentual conservador")
	policy := fs.String("duplicates", string(dataset.Overwrite), "política para linhas duplicadas (overwrite ou accumulate)")
	xlsxOut := fs.String("xlsx", "", "grava também o relatório em XLSX neste caminho")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		return errMissingFile
	}

	duplicatePolicy, err := dataset.ParseDuplicatePolicy(*policy)
	if err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer f.Close()

	table, err := ingest.Read(*file, f)
	if err != nil {
		return err
	}

	holidayTable, err := holidays.Default()
	if err != nil {
		return err
	}

	service := analyzing.NewService(analyzing.Config{
		Defaults: analyzing.Defaults{
			BaseYears:       *baseYears,
			OptimisticPct:   *optimistic,
			ConservativePct: *conservative,
		},
		DuplicatePolicy: duplicatePolicy,
	}, holidayTable)

	if _, err := service.LoadDataset(ctx, *file, table); err != nil {
		return err
	}

	selected, err := service.Sites(ctx)
	if err != nil {
		return err
	}
	if *sites != "" {
		selected = splitList(*sites)
	}

	if _, err := service.Calculate(ctx, analyzing.RawParams{
		BaseYears:       *baseYears,
		OptimisticPct:   optimistic,
		ConservativePct: conservative,
		Month:           *month,
		Year:            *year,
		Mode:            *mode,
		Sites:           selected,
	}); err != nil {
		return err
	}

	report, err := service.Report(ctx)
	if err != nil {
		return err
	}

	if *xlsxOut != "" {
		out, err := os.Create(*xlsxOut)
		if err != nil {
			return fmt.Errorf("erro ao criar arquivo XLSX: %w", err)
		}
		defer out.Close()

		if err := reporting.WriteXLSX(report, out); err != nil {
			return err
		}
	}

	pretty, err := utils.PrettyJson(report)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, pretty)
	return err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
