package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/holidays"
	"github.com/vfg2006/sales-target-api/internal/api"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/dataset"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level, err := log.Setup(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	policy, err := dataset.ParseDuplicatePolicy(cfg.Targets.DuplicatePolicy)
	if err != nil {
		logrus.WithError(err).Fatal("Política de duplicidade inválida")
	}

	holidayTable, err := holidays.Load(cfg.Holidays.File)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar tabela de feriados")
	}

	analyzer := analyzing.NewService(analyzing.Config{
		Defaults: analyzing.Defaults{
			BaseYears:       cfg.Targets.BaseYears,
			OptimisticPct:   cfg.Targets.OptimisticPct,
			ConservativePct: cfg.Targets.ConservativePct,
		},
		DuplicatePolicy: policy,
		Horizon:         cfg.Targets.Horizon,
	}, holidayTable)

	datasetReloadService := scheduler.NewDatasetReloadService(analyzer, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do conjunto de dados")
	} else {
		logrus.Info("Agendador de recarga do conjunto de dados iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, datasetReloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
