package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/ingest"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

//go:generate mockgen -source=dataset_reload.go -destination=mocks/mock_loader.go -package=mocks

var (
	ErrNoDataFile    = errors.New("nenhum arquivo de dados configurado")
	ErrReloadRunning = errors.New("recarga do conjunto de dados já em andamento")
)

// DatasetLoader recebe a tabela lida do arquivo e a publica na sessão de análise
type DatasetLoader interface {
	LoadDataset(ctx context.Context, source string, table dataset.Table) (*domain.DatasetSummary, error)
}

// TableReader converte o conteúdo do arquivo em tabela conforme a extensão
type TableReader func(filename string, r io.Reader) (dataset.Table, error)

// DatasetReloadConfig representa a configuração da recarga agendada
type DatasetReloadConfig struct {
	File          string
	CronSchedule  string
	ReloadEnabled bool
}

// DatasetReloadService recarrega periodicamente o conjunto de dados a partir de um arquivo local
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	config    DatasetReloadConfig
	loader    DatasetLoader
	read      TableReader

	syncMutex             sync.Mutex
	syncRunning           bool
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastModTime           time.Time
	lastDatasetID         string
	lastError             string
}

// NewDatasetReloadService cria o serviço de recarga com base na configuração global
func NewDatasetReloadService(loader DatasetLoader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		File:          appConfig.DataReload.File,
		CronSchedule:  appConfig.DataReload.CronSchedule,
		ReloadEnabled: appConfig.DataReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"data_file":      reloadConfig.File,
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração da recarga do conjunto de dados carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		loader:    loader,
		read:      ingest.Read,
	}
}

// Start carrega o arquivo configurado e, se habilitado, agenda as recargas seguintes
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if s.config.File == "" {
		logrus.Info("Nenhum arquivo de dados configurado, aguardando envio pela API")
		return nil
	}

	if err := s.Reload(ctx, true); err != nil {
		logrus.WithError(err).Warn("Carga inicial do conjunto de dados falhou")
	}

	if !s.config.ReloadEnabled {
		logrus.Info("Recarga agendada do conjunto de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do conjunto de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Reload(ctx, false); err != nil && !errors.Is(err, ErrReloadRunning) {
			logrus.WithError(err).Error("Erro na recarga agendada do conjunto de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do conjunto de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do conjunto de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload lê o arquivo e publica o conjunto de dados. Sem force, um arquivo não modificado
// desde a última carga bem-sucedida é ignorado.
func (s *DatasetReloadService) Reload(ctx context.Context, force bool) error {
	if s.config.File == "" {
		return ErrNoDataFile
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return ErrReloadRunning
	}
	s.syncRunning = true
	s.lastReloadStartedAt = time.Now()
	lastModTime := s.lastModTime
	s.syncMutex.Unlock()

	summary, modTime, err := s.load(ctx, force, lastModTime)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.lastError = ""
	s.lastReloadCompletedAt = time.Now()
	if summary != nil {
		s.lastModTime = modTime
		s.lastDatasetID = summary.ID
	}
	return nil
}

func (s *DatasetReloadService) load(ctx context.Context, force bool, lastModTime time.Time) (*domain.DatasetSummary, time.Time, error) {
	f, err := os.Open(s.config.File)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao abrir arquivo de dados: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao consultar arquivo de dados: %w", err)
	}

	if !force && info.ModTime().Equal(lastModTime) {
		logrus.WithField("data_file", s.config.File).Debug("Arquivo de dados não modificado, recarga ignorada")
		return nil, time.Time{}, nil
	}

	startTime := time.Now()
	name := filepath.Base(s.config.File)

	table, err := s.read(name, f)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("erro ao ler arquivo de dados: %w", err)
	}

	summary, err := s.loader.LoadDataset(ctx, name, table)
	if err != nil {
		return nil, time.Time{}, err
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": summary.ID,
		"data_file":  s.config.File,
		"duration":   time.Since(startTime).String(),
	}).Info("Recarga do conjunto de dados concluída")

	return summary, info.ModTime(), nil
}

// TriggerManualReload inicia uma recarga forçada em segundo plano
func (s *DatasetReloadService) TriggerManualReload() error {
	if s.config.File == "" {
		return ErrNoDataFile
	}

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		return ErrReloadRunning
	}

	logrus.Info("Iniciando recarga manual do conjunto de dados")
	go func() {
		if err := s.Reload(context.Background(), true); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do conjunto de dados")
		}
	}()
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.ReloadEnabled,
		"reload_cron":              s.config.CronSchedule,
		"data_file":                s.config.File,
		"running":                  s.syncRunning,
		"last_dataset_id":          s.lastDatasetID,
		"last_error":               s.lastError,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
	}
}
