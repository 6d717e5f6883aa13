package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Analisador de vendas: limpa, enriquece e consolida dados em um relatório",
	Long: `salesreport lê um arquivo de vendas delimitado por pipe, valida e limpa os
registros, enriquece cada produto com categoria e marca do catálogo remoto,
calcula as métricas consolidadas e gera o relatório em texto.

Os caminhos de entrada e saída, o delimitador e os parâmetros do relatório
são configurados via variáveis de ambiente ou arquivo .env.`,
	SilenceUsage: true,
	// Invocar sem subcomando executa a análise completa
	RunE: runAnalysis,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa a análise completa de vendas",
	RunE:  runAnalysis,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Exibe a versão do salesreport",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("salesreport %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	configureLogger()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
