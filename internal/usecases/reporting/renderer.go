package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const (
	narrowRule = 50
	wideRule   = 65
)

// Renderer gera o documento de texto do relatório a partir dos agregados
type Renderer interface {
	Render(data *domain.ReportData, generatedAt time.Time) string
}

type Service struct {
	currencySymbol        string
	topProductsLimit      int
	lowPerformerThreshold int
}

func NewRenderer(cfg *config.Config) Renderer {
	return &Service{
		currencySymbol:        cfg.Report.CurrencySymbol,
		topProductsLimit:      cfg.Report.TopProductsLimit,
		lowPerformerThreshold: cfg.Report.LowPerformerThreshold,
	}
}

// Render é uma função pura: a mesma entrada produz sempre a mesma saída,
// byte a byte. O instante de geração vem de fora justamente para isso.
func (s *Service) Render(data *domain.ReportData, generatedAt time.Time) string {
	var b strings.Builder

	s.writeHeader(&b, data, generatedAt)
	s.writeSummary(&b, data)
	s.writeRegions(&b, data)
	s.writeTopProducts(&b, data)
	s.writeInsights(&b, data)
	s.writeEnrichment(&b, data)

	b.WriteString(rule("=", narrowRule))
	b.WriteString("END OF REPORT\n")

	return b.String()
}

func (s *Service) writeHeader(b *strings.Builder, data *domain.ReportData, generatedAt time.Time) {
	b.WriteString(rule("=", narrowRule))
	b.WriteString("              SALES ANALYTICS REPORT\n")
	b.WriteString(rule("=", narrowRule))
	fmt.Fprintf(b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Records Processed: %d\n", data.TransactionCount)
	b.WriteString("\n")
}

func (s *Service) writeSummary(b *strings.Builder, data *domain.ReportData) {
	b.WriteString(rule("-", narrowRule))
	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(rule("-", narrowRule))
	fmt.Fprintf(b, "Total Revenue       : %s\n", s.money(data.TotalRevenue))
	fmt.Fprintf(b, "Total Transactions  : %d\n", data.TransactionCount)
	fmt.Fprintf(b, "Average Order Value : %s\n", s.money(data.AverageOrderValue))
	b.WriteString("\n")
}

// writeRegions imprime a tabela de regiões ordenada por receita decrescente.
// A ordenação acontece sobre uma cópia: o agregado preserva a ordem de
// primeira aparição.
func (s *Service) writeRegions(b *strings.Builder, data *domain.ReportData) {
	b.WriteString(rule("-", wideRule))
	b.WriteString("REGION PERFORMANCE\n")
	b.WriteString(rule("-", wideRule))
	fmt.Fprintf(b, "%-15s | %-15s | %-8s | %-5s | %s\n", "Region", "Revenue", "% Total", "Txns", "Avg Order")
	b.WriteString(rule("-", wideRule))

	regions := make([]domain.RegionSummary, len(data.Regions))
	copy(regions, data.Regions)
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].TotalRevenue > regions[j].TotalRevenue
	})

	for _, region := range regions {
		fmt.Fprintf(b, "%-15s | %-15s | %-8s | %-5d | %s\n",
			region.Region,
			s.money(region.TotalRevenue),
			utils.FormatPercent(region.Percentage),
			region.TransactionCount,
			s.money(region.AverageOrder),
		)
	}
	b.WriteString("\n")
}

func (s *Service) writeTopProducts(b *strings.Builder, data *domain.ReportData) {
	b.WriteString(rule("-", narrowRule))
	fmt.Fprintf(b, "TOP %d PRODUCTS BY UNITS SOLD\n", s.topProductsLimit)
	b.WriteString(rule("-", narrowRule))

	for i, product := range data.TopProducts {
		fmt.Fprintf(b, "%d. %-30s : %d units (%s)\n",
			i+1,
			product.ProductName,
			product.TotalQuantity,
			s.money(product.TotalRevenue),
		)
	}
	b.WriteString("\n")
}

func (s *Service) writeInsights(b *strings.Builder, data *domain.ReportData) {
	b.WriteString(rule("-", narrowRule))
	b.WriteString("PRODUCT INSIGHTS\n")
	b.WriteString(rule("-", narrowRule))

	if len(data.LowPerformers) == 0 {
		fmt.Fprintf(b, "Low Performing Products (< %d units): none\n", s.lowPerformerThreshold)
	} else {
		entries := make([]string, 0, len(data.LowPerformers))
		for _, product := range data.LowPerformers {
			entries = append(entries, fmt.Sprintf("%s (%d)", product.ProductName, product.TotalQuantity))
		}
		fmt.Fprintf(b, "Low Performing Products (< %d units): %s\n", s.lowPerformerThreshold, strings.Join(entries, ", "))
	}
	b.WriteString("\n")
}

func (s *Service) writeEnrichment(b *strings.Builder, data *domain.ReportData) {
	b.WriteString(rule("-", narrowRule))
	b.WriteString("ENRICHMENT SUMMARY\n")
	b.WriteString(rule("-", narrowRule))
	fmt.Fprintf(b, "Records Processed  : %d\n", data.Enrichment.Processed)
	fmt.Fprintf(b, "Matched Records    : %d\n", data.Enrichment.Matched)
	fmt.Fprintf(b, "Match Rate         : %s\n", utils.FormatPercent(data.Enrichment.SuccessRate))
	if len(data.Enrichment.UnmatchedSample) == 0 {
		b.WriteString("Unmatched Products : none\n")
	} else {
		fmt.Fprintf(b, "Unmatched Products : %s\n", strings.Join(data.Enrichment.UnmatchedSample, ", "))
	}
}

func (s *Service) money(f float64) string {
	return s.currencySymbol + utils.FormatAmount(f)
}

func rule(char string, width int) string {
	return strings.Repeat(char, width) + "\n"
}
