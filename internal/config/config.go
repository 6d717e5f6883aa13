package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Input   Input   `mapstructure:",squash"`
	Output  Output  `mapstructure:",squash"`
	Report  Report  `mapstructure:",squash"`
	Catalog Catalog `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Input define o arquivo de vendas e o layout das linhas.
// A ordem dos campos é fixa: pedido | produto | região | quantidade | preço unitário.
type Input struct {
	Path         string `mapstructure:"input_path"`
	Delimiter    string `mapstructure:"field_delimiter"`
	FieldCount   int    `mapstructure:"field_count"`
	HeaderPrefix string `mapstructure:"header_prefix"`
}

type Output struct {
	ReportPath   string `mapstructure:"report_path"`
	EnrichedPath string `mapstructure:"enriched_path"`
	DumpEnabled  bool   `mapstructure:"enriched_dump_enabled"`
}

type Report struct {
	TopProductsLimit      int    `mapstructure:"top_products_limit"`
	LowPerformerThreshold int    `mapstructure:"low_performer_threshold"`
	CurrencySymbol        string `mapstructure:"currency_symbol"`
}

type Catalog struct {
	BaseURL string        `mapstructure:"catalog_base_url"`
	Timeout time.Duration `mapstructure:"catalog_timeout"`
	Enabled bool          `mapstructure:"catalog_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("INPUT_PATH", "data/sales_data.txt")
	viper.SetDefault("FIELD_DELIMITER", "|")
	viper.SetDefault("FIELD_COUNT", 5)
	viper.SetDefault("HEADER_PREFIX", "OrderID|")

	viper.SetDefault("REPORT_PATH", "output/sales_report.txt")
	viper.SetDefault("ENRICHED_PATH", "data/enriched_sales_data.txt")
	viper.SetDefault("ENRICHED_DUMP_ENABLED", true)

	viper.SetDefault("TOP_PRODUCTS_LIMIT", 5)
	viper.SetDefault("LOW_PERFORMER_THRESHOLD", 10)
	viper.SetDefault("CURRENCY_SYMBOL", "$")

	viper.SetDefault("CATALOG_BASE_URL", "https://dummyjson.com")
	viper.SetDefault("CATALOG_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env de localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
