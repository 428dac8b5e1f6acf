package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type reloaderStub struct {
	err    error
	status map[string]any
}

func (s reloaderStub) TriggerManualReload() error { return s.err }
func (s reloaderStub) GetStatus() map[string]any { return s.status }

func newTestRouter(service analyzing.Analyzer, cron CronJobServices) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck(service)...),
		router.WithRoutes(Dataset(service, 1<<20)...),
		router.WithRoutes(Targets(service)...),
		router.WithRoutes(Reports(service)...),
		router.WithRoutes(CronJobs(cron)...),
	)
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func reportFixture() *domain.Report {
	return &domain.Report{
		ID:          "rep12345",
		GeneratedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Parameters:  domain.ReportParams{BaseYears: []int{2021}, Month: "Mar", Year: 2025, Mode: "per_site", Sites: []string{"A"}},
		Entities: []domain.ReportEntity{
			{Entity: "A", Targets: domain.ReportTargets{Base: 110000, Optimistic: 116000, Conservative: 99000}},
		},
		Warnings: []domain.Warning{},
	}
}

func TestUploadDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		filename       string
		content        string
		setup          func(service *mocks.MockAnalyzer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:     "CSV válido",
			filename: "vendas.csv",
			content:  "Year,Month,Sales,Site\n2024,Mar,120000,A\n",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					LoadDataset(gomock.Any(), "vendas.csv", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, table dataset.Table) (*domain.DatasetSummary, error) {
						assert.Equal(t, 1, table.Len())
						return &domain.DatasetSummary{ID: "ds123456", Sites: []string{"A"}}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:     "Coluna ausente",
			filename: "vendas.csv",
			content:  "Year,Month,Site\n2024,Mar,A\n",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					LoadDataset(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &dataset.SchemaError{Missing: []string{"Sales"}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrSchema,
		},
		{
			name:     "Tipo de coluna inválido",
			filename: "vendas.csv",
			content:  "Year,Month,Sales,Site\n2024.5,Mar,1,A\n",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					LoadDataset(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &dataset.TypeError{Column: "Year", Expected: "integer", Found: "float"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrColumnType,
		},
		{
			name:           "Extensão não suportada",
			filename:       "vendas.txt",
			content:        "qualquer coisa",
			setup:          func(service *mocks.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			body, contentType := multipartBody(t, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/v1/dataset", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			newTestRouter(service, CronJobServices{}).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestUploadDataset_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/v1/dataset", strings.NewReader(""))
	rec := httptest.NewRecorder()

	newTestRouter(mocks.NewMockAnalyzer(ctrl), CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestCalculateTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockAnalyzer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Cálculo por site",
			body: `{"base_years":"2021,2022,2024","month":"Mar","year":2025,"mode":"per_site","sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					Calculate(gomock.Any(), analyzing.RawParams{
						BaseYears: "2021,2022,2024",
						Month:     "Mar",
						Year:      2025,
						Mode:      "per_site",
						Sites:     []string{"A"},
					}).
					Return(&domain.CalculationResult{
						Entities: []domain.EntityResult{{Entity: "A", Target: domain.TargetResult{Base: 110000}}},
						Warnings: []domain.Warning{},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "JSON inválido",
			body:           `{"month":`,
			setup:          func(service *mocks.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Nenhum site selecionado",
			body: `{"month":"Mar","year":2025}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, analyzing.ErrMissingSelection)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Ano base malformado",
			body: `{"base_years":"2021,abc","month":"Mar","year":2025,"sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					Calculate(gomock.Any(), gomock.Any()).
					Return(nil, &analyzing.ConfigError{Field: "base_years", Value: "2021,abc"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Sem conjunto de dados",
			body: `{"month":"Mar","year":2025,"sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, analyzing.ErrNoDataset)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrNoDataset,
		},
		{
			name: "Site desconhecido",
			body: `{"month":"Mar","year":2025,"sites":["Z"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					Calculate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: Z", analyzing.ErrUnknownSite))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNotFound,
		},
		{
			name: "Dados insuficientes",
			body: `{"month":"Mar","year":2025,"sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					Calculate(gomock.Any(), gomock.Any()).
					Return(nil, &targeting.InsufficientDataError{Entity: "A", Month: "Mar"})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   apiErrors.ErrInsufficientData,
		},
		{
			name: "Erro inesperado",
			body: `{"month":"Mar","year":2025,"sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errors.New("falha"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name: "Resultado não serializável responde erro interno",
			body: `{"month":"Mar","year":2025,"sites":["A"]}`,
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().
					Calculate(gomock.Any(), gomock.Any()).
					Return(&domain.CalculationResult{
						Entities: []domain.EntityResult{{Entity: "A", Target: domain.TargetResult{Base: math.NaN()}}},
					}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/targets/calculate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newTestRouter(service, CronJobServices{}).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetEntityResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAnalyzer(ctrl)
	service.EXPECT().
		Entity(gomock.Any(), "Combined").
		Return(&domain.EntityResult{Entity: "Combined", Target: domain.TargetResult{Base: 160000}}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(service, CronJobServices{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/targets/entities/Combined", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.EntityResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 160000.0, result.Target.Base)
}

func TestDownloadReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name                string
		query               string
		setup               func(service *mocks.MockAnalyzer)
		expectedStatus      int
		expectedContentType string
	}{
		{
			name: "JSON por padrão",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Report(gomock.Any()).Return(reportFixture(), nil)
			},
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/json",
		},
		{
			name:  "Planilha XLSX",
			query: "?format=xlsx",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Report(gomock.Any()).Return(reportFixture(), nil)
			},
			expectedStatus:      http.StatusOK,
			expectedContentType: xlsxContentType,
		},
		{
			name:                "Formato desconhecido",
			query:               "?format=pdf",
			setup:               func(service *mocks.MockAnalyzer) {},
			expectedStatus:      http.StatusBadRequest,
			expectedContentType: "application/json",
		},
		{
			name: "Sem cálculo",
			setup: func(service *mocks.MockAnalyzer) {
				service.EXPECT().Report(gomock.Any()).Return(nil, analyzing.ErrNoCalculation)
			},
			expectedStatus:      http.StatusConflict,
			expectedContentType: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			newTestRouter(service, CronJobServices{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/download"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedContentType, rec.Header().Get("Content-Type"))
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "rep12345")
				assert.NotZero(t, rec.Body.Len())
			}
		})
	}
}

func TestGetTrendChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAnalyzer(ctrl)
	service.EXPECT().
		Entity(gomock.Any(), "A").
		Return(&domain.EntityResult{
			Entity: "A",
			Trend: domain.SiteTrend{
				Site:           "A",
				TrailingPeriod: domain.TrailingWindow(domain.Mar, 2025, domain.DefaultWindow),
				TrailingSeries: []float64{10, 20, 30, 40, 50, 60},
			},
			Projection: domain.Projection{{Month: domain.Apr, Year: 2025, Projected: 70, Optimistic: 74, Conservative: 63}},
		}, nil)

	rt := newTestRouter(service, CronJobServices{})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charts/trend.png?site=A", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charts/trend.png", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHolidays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAnalyzer(ctrl)
	service.EXPECT().
		Holidays(gomock.Any(), 2025, domain.Mar).
		Return([]string{"Mar 21 (Human Rights Day)"})

	rt := newTestRouter(service, CronJobServices{})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/holidays?year=2025&month=mar", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"year":2025,"month":"Mar","holidays":["Mar 21 (Human Rights Day)"]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/holidays?year=2025&month=March", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		method         string
		path           string
		services       CronJobServices
		expectedStatus int
	}{
		{
			name:           "Recarga iniciada",
			method:         http.MethodPost,
			path:           "/v1/cron/dataset-reload/run",
			services:       CronJobServices{DatasetReloadService: reloaderStub{}},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Recarga já em andamento",
			method:         http.MethodPost,
			path:           "/v1/cron/dataset-reload/run",
			services:       CronJobServices{DatasetReloadService: reloaderStub{err: scheduler.ErrReloadRunning}},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Sem arquivo configurado",
			method:         http.MethodPost,
			path:           "/v1/cron/dataset-reload/run",
			services:       CronJobServices{DatasetReloadService: reloaderStub{err: scheduler.ErrNoDataFile}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Tipo desconhecido",
			method:         http.MethodPost,
			path:           "/v1/cron/meta/run",
			services:       CronJobServices{DatasetReloadService: reloaderStub{}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Status",
			method:         http.MethodGet,
			path:           "/v1/cron/status",
			services:       CronJobServices{DatasetReloadService: reloaderStub{status: map[string]any{"running": false}}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(mocks.NewMockAnalyzer(ctrl), tt.services).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m *mocks.MockAnalyzer)
		expectedID string
	}{
		{
			name: "Com conjunto de dados",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().Summary(gomock.Any()).Return(&domain.DatasetSummary{ID: "abc12345"}, nil)
			},
			expectedID: "abc12345",
		},
		{
			name: "Sem conjunto de dados",
			setup: func(m *mocks.MockAnalyzer) {
				m.EXPECT().Summary(gomock.Any()).Return(nil, analyzing.ErrNoDataset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			newTestRouter(service, CronJobServices{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var body healthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.expectedID, body.DatasetID)
		})
	}
}
