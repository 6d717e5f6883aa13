package enriching

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// Enricher acrescenta categoria e marca do catálogo às transações
type Enricher interface {
	Enrich(ctx context.Context, transactions []domain.Transaction) []domain.EnrichedTransaction
}

type Service struct {
	cfg            *config.Config
	catalogService catalog.Integrator
}

func NewService(cfg *config.Config, catalogService catalog.Integrator) Enricher {
	return &Service{
		cfg:            cfg,
		catalogService: catalogService,
	}
}

// Enrich consulta o catálogo uma única vez por produto distinto e mescla o
// resultado em cada transação. Falha de consulta não descarta transações:
// o produto é tratado como não encontrado e os campos ficam vazios.
func (s *Service) Enrich(ctx context.Context, transactions []domain.Transaction) []domain.EnrichedTransaction {
	enriched := make([]domain.EnrichedTransaction, 0, len(transactions))

	// Cache por execução: cada produto distinto gera no máximo uma
	// requisição ao catálogo. Um valor nil em cache registra a ausência.
	cache := make(map[string]*catalogdomain.Product)

	lookups := 0
	for _, transaction := range transactions {
		product, seen := cache[transaction.ProductName]
		if !seen {
			product = s.lookup(ctx, transaction.ProductName)
			cache[transaction.ProductName] = product
			lookups++
		}

		entry := domain.EnrichedTransaction{Transaction: transaction}
		if product != nil {
			entry.Category = product.Category
			entry.Brand = product.Brand
			entry.Matched = true
		}

		enriched = append(enriched, entry)
	}

	matched := 0
	for _, entry := range enriched {
		if entry.Matched {
			matched++
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"transactions":      len(transactions),
		"distinct_products": lookups,
		"matched":           matched,
	}).Info("Enriquecimento concluído")

	return enriched
}

// lookup faz uma única tentativa de consulta; qualquer falha degrada
// para "não encontrado"
func (s *Service) lookup(ctx context.Context, productName string) *catalogdomain.Product {
	if !s.cfg.Catalog.Enabled {
		return nil
	}

	product, err := s.catalogService.LookupProduct(ctx, productName)
	if err != nil {
		logrus.WithError(err).WithField("product", productName).
			Warn("Falha na consulta ao catálogo, seguindo sem enriquecimento")
		return nil
	}

	return product
}
