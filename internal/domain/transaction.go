package domain

// Transaction representa uma linha de venda válida do arquivo de entrada
type Transaction struct {
	OrderID     string
	ProductName string
	Region      string
	Quantity    int
	UnitPrice   float64
}

// Revenue calcula a receita da transação (quantidade x preço unitário)
func (t Transaction) Revenue() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction é uma transação acrescida dos dados do catálogo.
// Category e Brand ficam vazios quando o produto não foi encontrado;
// a falha de enriquecimento nunca descarta a transação.
type EnrichedTransaction struct {
	Transaction
	Category string
	Brand    string
	Matched  bool
}

// ParseStats resume o resultado do parsing de um arquivo
type ParseStats struct {
	TotalLines   int
	ValidRecords int
	SkippedLines int
}
