package datafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
)

func testStore(t *testing.T, inputContent string) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "sales_data.txt")

	if inputContent != "" {
		require.NoError(t, os.WriteFile(inputPath, []byte(inputContent), 0o644))
	}

	cfg := &config.Config{
		Input: config.Input{
			Path:         inputPath,
			Delimiter:    "|",
			FieldCount:   5,
			HeaderPrefix: "OrderID|",
		},
		Output: config.Output{
			ReportPath:   filepath.Join(dir, "output", "sales_report.txt"),
			EnrichedPath: filepath.Join(dir, "enriched", "enriched_sales_data.txt"),
		},
	}

	return NewStore(cfg), dir
}

func TestStore_ReadInputLines(t *testing.T) {
	content := "OrderID|ProductName|Region|Quantity|UnitPrice\n" +
		"1|Widget|North|10|2.50\n" +
		"\n" +
		"2|Gadget|South|3|10.00\n"

	store, _ := testStore(t, content)

	lines, err := store.ReadInputLines()
	require.NoError(t, err)

	// Cabeçalho e linha em branco não contam como registros
	assert.Equal(t, []string{
		"1|Widget|North|10|2.50",
		"2|Gadget|South|3|10.00",
	}, lines)
}

func TestStore_ReadInputLines_NoHeader(t *testing.T) {
	store, _ := testStore(t, "1|Widget|North|10|2.50\n")

	lines, err := store.ReadInputLines()
	require.NoError(t, err)

	assert.Equal(t, []string{"1|Widget|North|10|2.50"}, lines)
}

func TestStore_ReadInputLines_EmptyFile(t *testing.T) {
	store, dir := testStore(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales_data.txt"), []byte(""), 0o644))

	lines, err := store.ReadInputLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_ReadInputLines_MissingFile(t *testing.T) {
	store, _ := testStore(t, "")

	_, err := store.ReadInputLines()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao abrir o arquivo de vendas")
}
