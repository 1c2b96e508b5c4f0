package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Sales        Sales        `mapstructure:",squash"`
	CostImporter CostImporter `mapstructure:",squash"`
	Upstream     Upstream     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	Metrics      Metrics      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Sales struct {
	Host string `mapstructure:"sales_service_host"`
	Port string `mapstructure:"sales_service_port"`
	URL  string `mapstructure:"-"`
}

type CostImporter struct {
	Host string `mapstructure:"cost_importer_host"`
	Port string `mapstructure:"cost_importer_port"`
	URL  string `mapstructure:"-"`
}

// Upstream agrupa configurações comuns às chamadas aos serviços de vendas e custos
type Upstream struct {
	Timeout time.Duration `mapstructure:"upstream_timeout"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Namespace string `mapstructure:"metrics_namespace"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "127.0.0.1")
	viper.SetDefault("PORT", "8005")

	viper.SetDefault("SALES_SERVICE_HOST", "127.0.0.1")
	viper.SetDefault("SALES_SERVICE_PORT", "8003")

	viper.SetDefault("COST_IMPORTER_HOST", "127.0.0.1")
	viper.SetDefault("COST_IMPORTER_PORT", "8004")

	viper.SetDefault("UPSTREAM_TIMEOUT", "5s") // timeout por chamada a cada serviço

	viper.SetDefault("AUTH_SECRET", "") // vazio desabilita a autenticação

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("METRICS_NAMESPACE", "crm_reporting")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize monta as URLs dos serviços e valida os valores carregados
func (c *Config) finalize() error {
	if c.Sales.Host == "" || c.Sales.Port == "" {
		return fmt.Errorf("config: sales service host and port are required")
	}
	if c.CostImporter.Host == "" || c.CostImporter.Port == "" {
		return fmt.Errorf("config: cost importer host and port are required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("config: upstream timeout must be positive, got %s", c.Upstream.Timeout)
	}

	c.Sales.URL = fmt.Sprintf("http://%s:%s", c.Sales.Host, c.Sales.Port)
	c.CostImporter.URL = fmt.Sprintf("http://%s:%s", c.CostImporter.Host, c.CostImporter.Port)

	return nil
}

// AuthEnabled indica se as rotas exigem token Bearer
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
