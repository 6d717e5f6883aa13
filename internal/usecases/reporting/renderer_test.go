package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

func newTestRenderer() Renderer {
	return NewRenderer(&config.Config{
		Report: config.Report{
			TopProductsLimit:      5,
			LowPerformerThreshold: 10,
			CurrencySymbol:        "$",
		},
	})
}

func sampleData() *domain.ReportData {
	return &domain.ReportData{
		TotalRevenue:      87.50,
		TransactionCount:  4,
		AverageOrderValue: 21.875,
		Regions: []domain.RegionSummary{
			// Ordem de primeira aparição; o renderizador ordena por receita
			{Region: "South", TotalRevenue: 30.00, TransactionCount: 1, Percentage: 34.285714285714285, AverageOrder: 30.00},
			{Region: "North", TotalRevenue: 37.50, TransactionCount: 2, Percentage: 42.857142857142854, AverageOrder: 18.75},
			{Region: "East", TotalRevenue: 20.00, TransactionCount: 1, Percentage: 22.857142857142858, AverageOrder: 20.00},
		},
		TopProducts: []domain.ProductRank{
			{ProductName: "Gizmo", TotalQuantity: 20, TotalRevenue: 20.00},
			{ProductName: "Widget", TotalQuantity: 15, TotalRevenue: 37.50},
			{ProductName: "Gadget", TotalQuantity: 3, TotalRevenue: 30.00},
		},
		LowPerformers: []domain.ProductRank{
			{ProductName: "Gadget", TotalQuantity: 3, TotalRevenue: 30.00},
		},
		Enrichment: domain.EnrichmentStats{
			Processed:       4,
			Matched:         2,
			SuccessRate:     50.0,
			UnmatchedSample: []string{"Gadget", "Gizmo"},
		},
	}
}

func TestService_Render(t *testing.T) {
	renderer := newTestRenderer()
	generatedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	narrow := strings.Repeat("=", 50)
	narrowDash := strings.Repeat("-", 50)
	wideDash := strings.Repeat("-", 65)

	expected := strings.Join([]string{
		narrow,
		"              SALES ANALYTICS REPORT",
		narrow,
		"Generated: 2024-01-15 10:30:00",
		"Records Processed: 4",
		"",
		narrowDash,
		"OVERALL SUMMARY",
		narrowDash,
		"Total Revenue       : $87.50",
		"Total Transactions  : 4",
		"Average Order Value : $21.88",
		"",
		wideDash,
		"REGION PERFORMANCE",
		wideDash,
		"Region          | Revenue         | % Total  | Txns  | Avg Order",
		wideDash,
		"North           | $37.50          | 42.86%   | 2     | $18.75",
		"South           | $30.00          | 34.29%   | 1     | $30.00",
		"East            | $20.00          | 22.86%   | 1     | $20.00",
		"",
		narrowDash,
		"TOP 5 PRODUCTS BY UNITS SOLD",
		narrowDash,
		"1. Gizmo                          : 20 units ($20.00)",
		"2. Widget                         : 15 units ($37.50)",
		"3. Gadget                         : 3 units ($30.00)",
		"",
		narrowDash,
		"PRODUCT INSIGHTS",
		narrowDash,
		"Low Performing Products (< 10 units): Gadget (3)",
		"",
		narrowDash,
		"ENRICHMENT SUMMARY",
		narrowDash,
		"Records Processed  : 4",
		"Matched Records    : 2",
		"Match Rate         : 50.00%",
		"Unmatched Products : Gadget, Gizmo",
		narrow,
		"END OF REPORT",
		"",
	}, "\n")

	assert.Equal(t, expected, renderer.Render(sampleData(), generatedAt))
}

func TestService_Render_ByteIdentical(t *testing.T) {
	renderer := newTestRenderer()
	generatedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	first := renderer.Render(sampleData(), generatedAt)
	second := renderer.Render(sampleData(), generatedAt)

	assert.Equal(t, first, second)
}

func TestService_Render_EmptyInput(t *testing.T) {
	renderer := newTestRenderer()
	generatedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	output := renderer.Render(&domain.ReportData{}, generatedAt)

	assert.Contains(t, output, "Total Revenue       : $0.00")
	assert.Contains(t, output, "Records Processed: 0")
	assert.Contains(t, output, "Low Performing Products (< 10 units): none")
	assert.Contains(t, output, "Unmatched Products : none")

	// Sem linhas de região nem produtos no ranking
	assert.NotContains(t, output, "units (")
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Region ") {
			// A linha seguinte ao cabeçalho da tabela é a régua; depois
			// dela vem direto a linha em branco da próxima seção
			assert.Equal(t, strings.Repeat("-", 65), lines[i+1])
			assert.Equal(t, "", lines[i+2])
		}
	}
}

func TestService_Render_SortsRegionsWithoutMutatingInput(t *testing.T) {
	renderer := newTestRenderer()
	data := sampleData()

	renderer.Render(data, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))

	// O agregado original continua na ordem de primeira aparição
	assert.Equal(t, "South", data.Regions[0].Region)
	assert.Equal(t, "North", data.Regions[1].Region)
	assert.Equal(t, "East", data.Regions[2].Region)
}
