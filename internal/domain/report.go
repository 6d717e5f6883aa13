package domain

// RegionSummary acumula as métricas de uma região.
// A ordem de primeira aparição no arquivo é preservada pelo agregador.
type RegionSummary struct {
	Region           string
	TotalRevenue     float64
	TransactionCount int
	Percentage       float64
	AverageOrder     float64
}

// ProductRank representa a posição de um produto no ranking de vendas
type ProductRank struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  float64
}

// EnrichmentStats resume o resultado do enriquecimento via catálogo
type EnrichmentStats struct {
	Processed int
	Matched   int
	// SuccessRate em percentual (0-100)
	SuccessRate float64
	// UnmatchedSample contém até cinco produtos sem correspondência,
	// na ordem de primeira aparição
	UnmatchedSample []string
}

// ReportData reúne todos os agregados consumidos pelo renderizador
type ReportData struct {
	TotalRevenue      float64
	TransactionCount  int
	AverageOrderValue float64
	Regions           []RegionSummary
	TopProducts       []ProductRank
	LowPerformers     []ProductRank
	Enrichment        EnrichmentStats
}
