package catalogclient

import (
	"context"
	"net/http"

	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
)

type Client interface {
	SearchProduct(ctx context.Context, params ProductSearchParams) (catalogdomain.SearchResponse, error)
}

type CatalogClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do catálogo
func NewClient(cfg *config.Config) Client {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		config: cfg,
	}
}
