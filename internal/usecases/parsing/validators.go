package parsing

import (
	"fmt"
	"strconv"
	"strings"
)

// Validadores por campo: cada um recebe o valor bruto e devolve o valor
// convertido ou um erro descrevendo a falha. Um registro só é aceito
// quando todos os campos passam.

func validateOrderID(raw string) (string, error) {
	orderID := strings.TrimSpace(raw)
	if orderID == "" {
		return "", fmt.Errorf("id do pedido vazio")
	}
	return orderID, nil
}

func validateProductName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("nome do produto vazio")
	}
	return name, nil
}

func validateRegion(raw string) (string, error) {
	region := strings.TrimSpace(raw)
	if region == "" {
		return "", fmt.Errorf("região vazia")
	}
	return region, nil
}

func validateQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("quantidade inválida: %q", raw)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("quantidade negativa: %d", quantity)
	}
	return quantity, nil
}

func validateUnitPrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("preço unitário inválido: %q", raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("preço unitário negativo: %v", price)
	}
	return price, nil
}
