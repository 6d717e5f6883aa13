package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics/infrastructure/datafile"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/pipeline"
	"github.com/vfg2006/sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// runAnalysis monta as dependências e executa o pipeline. Qualquer erro
// retornado aqui resulta em saída com código diferente de zero.
func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a configuração")
		return err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, runID := log.WithRunID(cmd.Context())
	logrus.WithField("run_id", runID).Info("Iniciando análise de vendas")

	store := datafile.NewStore(cfg)

	catalogClient := catalogclient.NewClient(cfg)
	catalogService := catalog.New(cfg, catalogClient)

	svc := pipeline.New(
		cfg,
		store,
		parsing.NewService(cfg),
		enriching.NewService(cfg, catalogService),
		aggregating.NewService(cfg),
		reporting.NewRenderer(cfg),
	)

	if err := svc.Run(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Error("Execução abortada por falha de I/O")
		return err
	}

	return nil
}
