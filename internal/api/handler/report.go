package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/chart"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetReport retorna o relatório do último cálculo
func GetReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Report(r.Context())
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// DownloadReport devolve o relatório como anexo em JSON (padrão) ou XLSX
func DownloadReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = "json"
		}
		if format != "json" && format != "xlsx" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: json, xlsx", nil)
			return
		}

		report, err := service.Report(r.Context())
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		filename := fmt.Sprintf("sales_targets_report_%s.%s", report.ID, format)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if format == "json" {
			writeJSON(w, r, http.StatusOK, report)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		if err := reporting.WriteXLSX(report, w); err != nil {
			logger.WithError(err).WithField("report_id", report.ID).Error("report: falha ao gerar XLSX")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
		}
	})
}

// GetTrendChart desenha a tendência e a projeção da entidade informada em ?site=
func GetTrendChart(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		site := r.URL.Query().Get("site")
		if site == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro 'site'", nil)
			return
		}

		entity, err := service.Entity(r.Context(), site)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		png, err := chart.RenderTrend(entity.Entity, entity.Trend.TrailingPeriod, entity.Trend.TrailingSeries, entity.Projection)
		if err != nil {
			logger.WithError(err).WithField("entity", site).Error("chart: falha ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(png); err != nil {
			logger.WithError(err).Warn("chart: falha ao enviar gráfico")
		}
	})
}
