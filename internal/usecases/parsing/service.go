package parsing

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// Parser transforma linhas brutas do arquivo de vendas em transações válidas
type Parser interface {
	Parse(lines []string) ([]domain.Transaction, domain.ParseStats)
}

type Service struct {
	delimiter  string
	fieldCount int
}

func NewService(cfg *config.Config) Parser {
	return &Service{
		delimiter:  cfg.Input.Delimiter,
		fieldCount: cfg.Input.FieldCount,
	}
}

// Parse processa todas as linhas de entrada. Linhas inválidas são contadas
// e descartadas; uma linha ruim nunca interrompe o lote.
func (s *Service) Parse(lines []string) ([]domain.Transaction, domain.ParseStats) {
	transactions := make([]domain.Transaction, 0, len(lines))
	stats := domain.ParseStats{TotalLines: len(lines)}

	for i, line := range lines {
		transaction, err := s.parseLine(line)
		if err != nil {
			stats.SkippedLines++
			logrus.WithFields(logrus.Fields{
				"line_number": i + 1,
				"reason":      err.Error(),
			}).Debug("Linha descartada durante o parsing")
			continue
		}

		transactions = append(transactions, transaction)
	}

	stats.ValidRecords = len(transactions)

	logrus.WithFields(logrus.Fields{
		"total_lines":   stats.TotalLines,
		"valid_records": stats.ValidRecords,
		"skipped_lines": stats.SkippedLines,
	}).Info("Parsing das transações concluído")

	return transactions, stats
}

// parseLine valida uma única linha no layout fixo:
// pedido | produto | região | quantidade | preço unitário
func (s *Service) parseLine(line string) (domain.Transaction, error) {
	var transaction domain.Transaction

	parts := strings.Split(line, s.delimiter)
	if len(parts) != s.fieldCount {
		return transaction, fmt.Errorf("esperados %d campos, encontrados %d", s.fieldCount, len(parts))
	}

	orderID, err := validateOrderID(parts[0])
	if err != nil {
		return transaction, err
	}

	productName, err := validateProductName(parts[1])
	if err != nil {
		return transaction, err
	}

	region, err := validateRegion(parts[2])
	if err != nil {
		return transaction, err
	}

	quantity, err := validateQuantity(parts[3])
	if err != nil {
		return transaction, err
	}

	unitPrice, err := validateUnitPrice(parts[4])
	if err != nil {
		return transaction, err
	}

	transaction = domain.Transaction{
		OrderID:     orderID,
		ProductName: productName,
		Region:      region,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}

	return transaction, nil
}
