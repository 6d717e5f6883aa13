package datafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const dumpHeader = "OrderID|ProductName|Region|Quantity|UnitPrice|Category|Brand"

// WriteReport grava o relatório final. A escrita é feita em um arquivo
// temporário renomeado ao fim, para nunca deixar um relatório parcial
// no caminho de saída.
func (s *Store) WriteReport(content string) error {
	path := s.cfg.Output.ReportPath

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar o diretório de saída para %q", path)
	}

	tag, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar o sufixo do arquivo temporário")
	}

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, tag)
	if err := os.WriteFile(tmpPath, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar o relatório em %q", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "erro ao mover o relatório para %q", path)
	}

	logrus.WithField("path", path).Info("Relatório gravado")

	return nil
}

// WriteEnrichedDump grava o dump de dados enriquecidos no mesmo layout
// delimitado da entrada, com categoria e marca como campos finais.
func (s *Store) WriteEnrichedDump(entries []domain.EnrichedTransaction) error {
	path := s.cfg.Output.EnrichedPath

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar o diretório do dump %q", path)
	}

	var b strings.Builder
	b.WriteString(dumpHeader + "\n")

	for _, entry := range entries {
		row := []string{
			entry.OrderID,
			entry.ProductName,
			entry.Region,
			strconv.Itoa(entry.Quantity),
			strconv.FormatFloat(entry.UnitPrice, 'f', -1, 64),
			entry.Category,
			entry.Brand,
		}
		b.WriteString(strings.Join(row, s.cfg.Input.Delimiter) + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar o dump enriquecido em %q", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(entries),
	}).Info("Dump de dados enriquecidos gravado")

	return nil
}
