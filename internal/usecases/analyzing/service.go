// Package analyzing mantém a sessão de análise: o conjunto de dados carregado e os
// resultados derivados do último cálculo.
package analyzing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/projecting"
	"github.com/vfg2006/sales-target-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/internal/usecases/trending"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_analyzer.go -package=mocks

// Analyzer define as ações disponíveis sobre a sessão de análise
type Analyzer interface {
	// LoadDataset substitui o conjunto de dados da sessão; em caso de erro o anterior é mantido
	LoadDataset(ctx context.Context, source string, table dataset.Table) (*domain.DatasetSummary, error)

	// Summary descreve o conjunto de dados carregado
	Summary(ctx context.Context) (*domain.DatasetSummary, error)

	// Sites lista os sites disponíveis na ordem de primeira aparição
	Sites(ctx context.Context) ([]string, error)

	// Calculate calcula metas, tendências e projeções e guarda o resultado na sessão
	Calculate(ctx context.Context, raw RawParams) (*domain.CalculationResult, error)

	// Entity retorna o resultado de uma entidade do último cálculo
	Entity(ctx context.Context, name string) (*domain.EntityResult, error)

	// Report monta o relatório exportável do último cálculo
	Report(ctx context.Context) (*domain.Report, error)

	// Holidays retorna os feriados do mês selecionado
	Holidays(ctx context.Context, year int, month domain.Month) []string
}

// HolidayLookup é a tabela de feriados consultada pela sessão
type HolidayLookup interface {
	ForMonth(year int, month domain.Month) []string
}

// Config reúne os padrões do cálculo, a política de duplicidade e o horizonte da projeção
type Config struct {
	Defaults        Defaults
	DuplicatePolicy dataset.DuplicatePolicy
	Horizon         int
}

// Service implementa Analyzer. O mutex serializa as ações: cada ação termina e publica
// seu estado antes da próxima começar.
type Service struct {
	cfg      Config
	holidays HolidayLookup
	now      func() time.Time

	mu      sync.Mutex
	ds      *dataset.Dataset
	summary *domain.DatasetSummary
	last    *domain.CalculationResult
}

// NewService cria uma sessão vazia
func NewService(cfg Config, holidays HolidayLookup) *Service {
	if cfg.Horizon <= 0 {
		cfg.Horizon = domain.DefaultWindow
	}
	if cfg.DuplicatePolicy == "" {
		cfg.DuplicatePolicy = dataset.Overwrite
	}

	return &Service{
		cfg:      cfg,
		holidays: holidays,
		now:      time.Now,
	}
}

func (s *Service) LoadDataset(ctx context.Context, source string, table dataset.Table) (*domain.DatasetSummary, error) {
	logger := log.ForContext(ctx)

	// Envio pela API e recarga agendada disputam a sessão; a validação também fica sob o
	// lock para que a ordem de publicação seja a ordem de chegada
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := dataset.Ingest(table, s.cfg.DuplicatePolicy)
	if err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"source": source,
			"rows":   table.Len(),
		}).Warn("analyzing: arquivo rejeitado, conjunto de dados anterior mantido")
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do conjunto de dados: %w", err)
	}

	summary := &domain.DatasetSummary{
		ID:              id,
		Source:          source,
		Rows:            ds.Rows(),
		Observations:    ds.Len(),
		Sites:           ds.Sites(),
		Years:           ds.Years(),
		DuplicatePolicy: string(ds.Policy()),
		LoadedAt:        s.now(),
	}

	s.ds = ds
	s.summary = summary
	s.last = nil

	logger.WithFields(log.Fields{
		"dataset_id":   id,
		"source":       source,
		"rows":         summary.Rows,
		"observations": summary.Observations,
		"sites":        len(summary.Sites),
	}).Info("analyzing: conjunto de dados carregado")

	return summary, nil
}

func (s *Service) Summary(ctx context.Context) (*domain.DatasetSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return nil, ErrNoDataset
	}
	summary := *s.summary
	return &summary, nil
}

func (s *Service) Sites(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ds == nil {
		return nil, ErrNoDataset
	}
	return s.ds.Sites(), nil
}

func (s *Service) Calculate(ctx context.Context, raw RawParams) (*domain.CalculationResult, error) {
	logger := log.ForContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ds == nil {
		return nil, ErrNoDataset
	}

	params, err := ParseParams(raw, s.cfg.Defaults)
	if err != nil {
		return nil, err
	}

	for _, site := range params.Sites {
		if !s.ds.HasSite(site) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSite, site)
		}
	}

	var result *domain.CalculationResult
	switch params.Mode {
	case domain.CombinedMode:
		result = s.calculateCombined(params)
	default:
		result = s.calculatePerSite(params)
	}

	s.last = result

	for _, w := range result.Warnings {
		logger.WithFields(log.Fields{
			"entity": w.Entity,
			"year":   w.Year,
		}).Warn("analyzing: " + w.Message)
	}

	logger.WithFields(log.Fields{
		"mode":     params.Mode,
		"month":    params.Month.String(),
		"year":     params.Year,
		"sites":    len(params.Sites),
		"entities": len(result.Entities),
		"warnings": len(result.Warnings),
	}).Info("analyzing: cálculo de metas concluído")

	return result, nil
}

func (s *Service) trends(params domain.CalculationParams) []domain.SiteTrend {
	trends := make([]domain.SiteTrend, 0, len(params.Sites))
	for _, site := range params.Sites {
		trends = append(trends, trending.Analyze(s.ds, site, params.Month, params.Year))
	}
	return trends
}

func (s *Service) calculatePerSite(params domain.CalculationParams) *domain.CalculationResult {
	targets, warnings := targeting.ComputePerSite(
		s.ds, params.Sites, params.BaseYears, params.Month, params.OptimisticPct, params.ConservativePct,
	)

	trends := s.trends(params)
	entities := make([]domain.EntityResult, 0, len(targets))
	for _, trend := range trends {
		target, ok := targets[trend.Site]
		if !ok {
			continue
		}
		entities = append(entities, s.entity(trend.Site, target, trend, params))
	}

	return &domain.CalculationResult{
		Params:   params,
		Entities: entities,
		Trends:   trends,
		Warnings: warnings,
	}
}

func (s *Service) calculateCombined(params domain.CalculationParams) *domain.CalculationResult {
	trends := s.trends(params)
	result := &domain.CalculationResult{
		Params:   params,
		Entities: []domain.EntityResult{},
		Trends:   trends,
	}

	target, warnings, err := targeting.ComputeCombined(
		s.ds, params.Sites, params.BaseYears, params.Month, params.OptimisticPct, params.ConservativePct,
	)
	result.Warnings = warnings
	if err != nil {
		result.Warnings = append(result.Warnings, domain.Warning{Entity: domain.CombinedEntity, Message: err.Error()})
		return result
	}

	combined := s.combineTrends(trends, params)
	result.Entities = append(result.Entities, s.entity(domain.CombinedEntity, target, combined, params))
	return result
}

func (s *Service) entity(name string, target domain.TargetResult, trend domain.SiteTrend, params domain.CalculationParams) domain.EntityResult {
	return domain.EntityResult{
		Entity:     name,
		Target:     target,
		Trend:      trend,
		GrowthRate: projecting.GrowthRate(trend.TrailingSeries),
		Projection: projecting.Project(
			target.Base,
			trend.TrailingSeries,
			params.OptimisticPct,
			params.ConservativePct,
			params.Month,
			params.Year,
			s.cfg.Horizon,
		),
	}
}

// combineTrends soma as séries dos sites selecionados para formar a tendência combinada
func (s *Service) combineTrends(trends []domain.SiteTrend, params domain.CalculationParams) domain.SiteTrend {
	combined := domain.SiteTrend{
		Site:           domain.CombinedEntity,
		TrailingPeriod: domain.TrailingWindow(params.Month, params.Year, domain.DefaultWindow),
		TrailingSeries: make([]float64, domain.DefaultWindow),
	}

	for _, trend := range trends {
		combined.CurrentSales += trend.CurrentSales
		for i, v := range trend.TrailingSeries {
			combined.TrailingSeries[i] += v
		}
	}

	previousYear := 0.0
	for _, site := range params.Sites {
		previousYear += s.ds.Lookup(site, params.Year-1, params.Month)
	}

	n := len(combined.TrailingSeries)
	combined.YoYGrowth = trending.Growth(combined.CurrentSales, previousYear)
	combined.MoMGrowth = trending.Growth(combined.TrailingSeries[n-1], combined.TrailingSeries[n-2])
	return combined
}

// Entity procura a entidade no último cálculo; ErrNoCalculation se ainda não houve cálculo
func (s *Service) Entity(ctx context.Context, name string) (*domain.EntityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return nil, ErrNoCalculation
	}

	for _, e := range s.last.Entities {
		if e.Entity == name {
			entity := e
			return &entity, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
}

// Report gera um novo ID a cada chamada; o conteúdo depende apenas do último cálculo
func (s *Service) Report(ctx context.Context) (*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return nil, ErrNoCalculation
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do relatório: %w", err)
	}

	return reporting.Assemble(id, s.last, s.now()), nil
}

func (s *Service) Holidays(ctx context.Context, year int, month domain.Month) []string {
	if s.holidays == nil {
		return []string{}
	}
	return s.holidays.ForMonth(year, month)
}
