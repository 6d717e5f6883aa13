package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

func newTestParser() Parser {
	return NewService(&config.Config{
		Input: config.Input{
			Delimiter:  "|",
			FieldCount: 5,
		},
	})
}

func TestService_Parse(t *testing.T) {
	tests := []struct {
		name          string
		lines         []string
		expected      []domain.Transaction
		expectSkipped int
	}{
		{
			name:  "Linha válida gera transação com receita derivada",
			lines: []string{"1|Widget|North|10|2.50"},
			expected: []domain.Transaction{
				{OrderID: "1", ProductName: "Widget", Region: "North", Quantity: 10, UnitPrice: 2.50},
			},
			expectSkipped: 0,
		},
		{
			name:          "Quantidade negativa descarta o registro",
			lines:         []string{"2|Widget|North|-3|2.50"},
			expected:      []domain.Transaction{},
			expectSkipped: 1,
		},
		{
			name:          "Preço não numérico descarta o registro",
			lines:         []string{"3|Widget|North|10|abc"},
			expected:      []domain.Transaction{},
			expectSkipped: 1,
		},
		{
			name:          "Preço negativo descarta o registro",
			lines:         []string{"4|Widget|North|10|-2.50"},
			expected:      []domain.Transaction{},
			expectSkipped: 1,
		},
		{
			name:          "Região vazia descarta o registro",
			lines:         []string{"5|Widget||10|2.50"},
			expected:      []domain.Transaction{},
			expectSkipped: 1,
		},
		{
			name:          "Número de campos errado descarta o registro",
			lines:         []string{"6|Widget|North|10"},
			expected:      []domain.Transaction{},
			expectSkipped: 1,
		},
		{
			name: "Linha ruim não afeta as demais do lote",
			lines: []string{
				"7|Widget|North|10|2.50",
				"linha completamente inválida",
				"8|Gadget|South|0|5.00",
			},
			expected: []domain.Transaction{
				{OrderID: "7", ProductName: "Widget", Region: "North", Quantity: 10, UnitPrice: 2.50},
				{OrderID: "8", ProductName: "Gadget", Region: "South", Quantity: 0, UnitPrice: 5.00},
			},
			expectSkipped: 1,
		},
		{
			name:  "Campos com espaços extras são normalizados",
			lines: []string{" 9 | Widget | North | 10 | 2.50 "},
			expected: []domain.Transaction{
				{OrderID: "9", ProductName: "Widget", Region: "North", Quantity: 10, UnitPrice: 2.50},
			},
			expectSkipped: 0,
		},
	}

	parser := newTestParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, stats := parser.Parse(tt.lines)

			assert.Equal(t, tt.expected, transactions)
			assert.Equal(t, tt.expectSkipped, stats.SkippedLines)

			// Linhas descartadas + registros válidos = total de linhas
			assert.Equal(t, len(tt.lines), stats.SkippedLines+stats.ValidRecords)
		})
	}
}

func TestTransaction_Revenue(t *testing.T) {
	transaction := domain.Transaction{Quantity: 10, UnitPrice: 2.50}
	assert.Equal(t, 25.00, transaction.Revenue())
}
