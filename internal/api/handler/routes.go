package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
)

// Healthcheck registra a rota de verificação de saúde
func Healthcheck(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

// Dataset recebe os middlewares aplicados apenas ao envio de arquivos (limite de taxa)
func Dataset(service analyzing.Analyzer, maxUploadBytes int64, uploadMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service, maxUploadBytes),
			Middlewares: uploadMiddlewares,
		},
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDataset(service),
		},
		{
			Path:    "/v1/sites",
			Method:  http.MethodGet,
			Handler: GetSites(service),
		},
	}
}

// Targets registra as rotas de cálculo de metas
func Targets(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets/calculate",
			Method:  http.MethodPost,
			Handler: CalculateTargets(service),
		},
		{
			Path:    "/v1/targets/entities/:entity",
			Method:  http.MethodGet,
			Handler: GetEntityResult(service),
		},
	}
}

// Reports registra as rotas de relatório, gráfico e feriados
func Reports(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/report/download",
			Method:  http.MethodGet,
			Handler: DownloadReport(service),
		},
		{
			Path:    "/v1/charts/trend.png",
			Method:  http.MethodGet,
			Handler: GetTrendChart(service),
		},
		{
			Path:    "/v1/holidays",
			Method:  http.MethodGet,
			Handler: GetHolidays(service),
		},
	}
}

// CronJobs registra as rotas de execução manual e status dos agendamentos
func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
