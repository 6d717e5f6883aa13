package aggregating

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const unmatchedSampleLimit = 5

// Aggregator calcula as métricas consolidadas do conjunto de transações
type Aggregator interface {
	Aggregate(transactions []domain.EnrichedTransaction) *domain.ReportData
}

type Service struct {
	topProductsLimit      int
	lowPerformerThreshold int
}

func NewService(cfg *config.Config) Aggregator {
	return &Service{
		topProductsLimit:      cfg.Report.TopProductsLimit,
		lowPerformerThreshold: cfg.Report.LowPerformerThreshold,
	}
}

// productTotals acompanha os acumulados de um produto durante a agregação
type productTotals struct {
	quantity int
	revenue  float64
}

// Aggregate percorre as transações uma única vez, na ordem de entrada,
// para manter o resultado determinístico. Regiões e produtos preservam
// a ordem de primeira aparição.
func (s *Service) Aggregate(transactions []domain.EnrichedTransaction) *domain.ReportData {
	data := &domain.ReportData{
		TransactionCount: len(transactions),
	}

	regionOrder := make([]string, 0)
	regionRevenue := make(map[string]float64)
	regionCount := make(map[string]int)

	productOrder := make([]string, 0)
	products := make(map[string]*productTotals)

	unmatchedSeen := make(map[string]bool)

	for _, transaction := range transactions {
		revenue := transaction.Revenue()
		data.TotalRevenue += revenue

		if _, ok := regionRevenue[transaction.Region]; !ok {
			regionOrder = append(regionOrder, transaction.Region)
		}
		regionRevenue[transaction.Region] += revenue
		regionCount[transaction.Region]++

		totals, ok := products[transaction.ProductName]
		if !ok {
			totals = &productTotals{}
			products[transaction.ProductName] = totals
			productOrder = append(productOrder, transaction.ProductName)
		}
		totals.quantity += transaction.Quantity
		totals.revenue += revenue

		data.Enrichment.Processed++
		if transaction.Matched {
			data.Enrichment.Matched++
		} else if !unmatchedSeen[transaction.ProductName] {
			unmatchedSeen[transaction.ProductName] = true
			if len(data.Enrichment.UnmatchedSample) < unmatchedSampleLimit {
				data.Enrichment.UnmatchedSample = append(data.Enrichment.UnmatchedSample, transaction.ProductName)
			}
		}
	}

	if data.TransactionCount > 0 {
		data.AverageOrderValue = data.TotalRevenue / float64(data.TransactionCount)
	}
	if data.Enrichment.Processed > 0 {
		data.Enrichment.SuccessRate = float64(data.Enrichment.Matched) / float64(data.Enrichment.Processed) * 100
	}

	data.Regions = s.buildRegionSummaries(regionOrder, regionRevenue, regionCount, data.TotalRevenue)
	data.TopProducts = s.buildTopProducts(productOrder, products)
	data.LowPerformers = s.buildLowPerformers(productOrder, products)

	logrus.WithFields(logrus.Fields{
		"transactions":  data.TransactionCount,
		"total_revenue": data.TotalRevenue,
		"regions":       len(data.Regions),
		"products":      len(productOrder),
	}).Info("Agregação concluída")

	return data
}

// buildRegionSummaries monta o resumo por região preservando a ordem de
// primeira aparição no arquivo
func (s *Service) buildRegionSummaries(
	order []string,
	revenue map[string]float64,
	count map[string]int,
	totalRevenue float64,
) []domain.RegionSummary {
	summaries := make([]domain.RegionSummary, 0, len(order))

	for _, region := range order {
		summary := domain.RegionSummary{
			Region:           region,
			TotalRevenue:     revenue[region],
			TransactionCount: count[region],
		}
		if totalRevenue > 0 {
			summary.Percentage = revenue[region] / totalRevenue * 100
		}
		if count[region] > 0 {
			summary.AverageOrder = revenue[region] / float64(count[region])
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// buildTopProducts ordena os produtos por quantidade vendida (decrescente)
// com empates resolvidos pela ordem de primeira aparição, e aplica o corte
func (s *Service) buildTopProducts(order []string, products map[string]*productTotals) []domain.ProductRank {
	ranking := rankize(order, products)

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalQuantity > ranking[j].TotalQuantity
	})

	if len(ranking) > s.topProductsLimit {
		ranking = ranking[:s.topProductsLimit]
	}

	return ranking
}

// buildLowPerformers lista os produtos abaixo do limiar de unidades,
// em ordem crescente de quantidade
func (s *Service) buildLowPerformers(order []string, products map[string]*productTotals) []domain.ProductRank {
	ranking := make([]domain.ProductRank, 0)
	for _, rank := range rankize(order, products) {
		if rank.TotalQuantity < s.lowPerformerThreshold {
			ranking = append(ranking, rank)
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalQuantity < ranking[j].TotalQuantity
	})

	return ranking
}

func rankize(order []string, products map[string]*productTotals) []domain.ProductRank {
	ranking := make([]domain.ProductRank, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, domain.ProductRank{
			ProductName:   name,
			TotalQuantity: products[name].quantity,
			TotalRevenue:  products[name].revenue,
		})
	}
	return ranking
}
