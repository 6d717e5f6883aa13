package pipeline

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics/infrastructure/datafile"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// Service encadeia as etapas da análise: leitura, parsing, enriquecimento,
// agregação e geração do relatório. Cada etapa consome a saída completa da
// anterior; não há estado compartilhado entre elas.
type Service struct {
	cfg        *config.Config
	store      *datafile.Store
	parser     parsing.Parser
	enricher   enriching.Enricher
	aggregator aggregating.Aggregator
	renderer   reporting.Renderer
	now        func() time.Time
}

func New(
	cfg *config.Config,
	store *datafile.Store,
	parser parsing.Parser,
	enricher enriching.Enricher,
	aggregator aggregating.Aggregator,
	renderer reporting.Renderer,
) *Service {
	return &Service{
		cfg:        cfg,
		store:      store,
		parser:     parser,
		enricher:   enricher,
		aggregator: aggregator,
		renderer:   renderer,
		now:        time.Now,
	}
}

// WithClock substitui a fonte de tempo do relatório (usado em testes para
// saída reprodutível)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run executa a análise completa. Apenas falhas de I/O retornam erro;
// linhas inválidas e falhas de catálogo degradam sem abortar a execução.
func (s *Service) Run(ctx context.Context) error {
	logger := log.ForContext(ctx)

	lines, err := s.store.ReadInputLines()
	if err != nil {
		return err
	}

	transactions, stats := s.parser.Parse(lines)
	logger.WithFields(log.Fields{
		"valid_records": stats.ValidRecords,
		"skipped_lines": stats.SkippedLines,
	}).Info("Etapa de parsing finalizada")

	enriched := s.enricher.Enrich(ctx, transactions)

	data := s.aggregator.Aggregate(enriched)

	report := s.renderer.Render(data, s.now())
	if err := s.store.WriteReport(report); err != nil {
		return err
	}

	if s.cfg.Output.DumpEnabled {
		if err := s.store.WriteEnrichedDump(enriched); err != nil {
			return err
		}
	}

	logger.WithFields(log.Fields{
		"total_revenue": data.TotalRevenue,
		"transactions":  data.TransactionCount,
	}).Info("Processo de análise de vendas concluído")

	return nil
}
