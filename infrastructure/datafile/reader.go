package datafile

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
)

// Store lê o arquivo de vendas e grava as saídas da execução
type Store struct {
	cfg *config.Config
}

func NewStore(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// ReadInputLines lê o arquivo de vendas linha a linha, descartando linhas
// em branco e a linha de cabeçalho quando presente. Arquivo ausente ou
// ilegível é erro fatal da execução.
func (s *Store) ReadInputLines() ([]string, error) {
	file, err := os.Open(s.cfg.Input.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo de vendas %q", s.cfg.Input.Path)
	}
	defer file.Close()

	lines := make([]string, 0)

	scanner := bufio.NewScanner(file)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if first {
			first = false
			if s.cfg.Input.HeaderPrefix != "" && strings.HasPrefix(line, s.cfg.Input.HeaderPrefix) {
				continue
			}
		}

		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o arquivo de vendas %q", s.cfg.Input.Path)
	}

	logrus.WithFields(logrus.Fields{
		"path":  s.cfg.Input.Path,
		"lines": len(lines),
	}).Info("Arquivo de vendas lido")

	return lines, nil
}
