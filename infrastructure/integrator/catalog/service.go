package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks

// Integrator define a capacidade de consulta de metadados de produto.
// Um retorno (nil, nil) indica produto não encontrado.
type Integrator interface {
	LookupProduct(ctx context.Context, name string) (*catalogdomain.Product, error)
}

type CatalogService struct {
	cfg    *config.Config
	Client catalogclient.Client
}

func New(cfg *config.Config, client catalogclient.Client) Integrator {
	return &CatalogService{
		cfg:    cfg,
		Client: client,
	}
}

// LookupProduct busca categoria e marca de um produto pelo nome.
// O primeiro resultado cujo título corresponde ao termo é usado;
// quando a busca não retorna nada, devolve nil sem erro.
func (s *CatalogService) LookupProduct(ctx context.Context, name string) (*catalogdomain.Product, error) {
	params := catalogclient.ProductSearchParams{
		Query: name,
		Limit: 1,
	}

	resp, err := s.Client.SearchProduct(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(resp.Products) == 0 {
		logrus.WithField("product", name).Debug("Produto não encontrado no catálogo")
		return nil, nil
	}

	product := resp.Products[0]
	if !strings.EqualFold(strings.TrimSpace(product.Title), strings.TrimSpace(name)) {
		// A busca é por termo; um resultado com título divergente é
		// tratado como correspondência mesmo assim, desde que o termo
		// esteja contido no título.
		if !strings.Contains(strings.ToLower(product.Title), strings.ToLower(strings.TrimSpace(name))) {
			logrus.WithFields(logrus.Fields{
				"product": name,
				"title":   product.Title,
			}).Debug("Resultado do catálogo sem correspondência com o produto")
			return nil, nil
		}
	}

	return &product, nil
}
