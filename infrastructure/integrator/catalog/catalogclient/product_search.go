package catalogclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ProductSearchParams struct {
	Query string
	Limit int
}

// SearchProduct consulta o catálogo pelo termo informado. Uma única
// tentativa por chamada; o chamador decide como tratar falhas.
func (c *CatalogClient) SearchProduct(ctx context.Context, params ProductSearchParams) (catalogdomain.SearchResponse, error) {
	var response catalogdomain.SearchResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Catalog.BaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/products/search")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("q", params.Query)
	if params.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", params.Limit))
	}
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
