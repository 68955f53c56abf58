package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	BitsBlog         BitsBlog         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Upload           Upload           `mapstructure:",squash"`
	AdExpirationSync AdExpirationSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// BitsBlog agrupa os dados de acesso à API REST do blog
type BitsBlog struct {
	URL         string        `mapstructure:"bitsblog_api_url"`
	Timeout     time.Duration `mapstructure:"bitsblog_api_timeout"`
	PublicRoute string        `mapstructure:"bitsblog_public_route"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	// JWTSecret vazio faz o guard consultar a sessão direto na API
	JWTSecret string `mapstructure:"auth_jwt_secret"`
	// ServiceToken é usado pelas rotinas agendadas, que não têm usuário
	ServiceToken string `mapstructure:"bitsblog_service_token"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type AdExpirationSync struct {
	CronSchedule string `mapstructure:"ad_expiration_sync_cron"`
	Enabled      bool   `mapstructure:"ad_expiration_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("BITSBLOG_API_URL", "http://localhost:8001")
	viper.SetDefault("BITSBLOG_API_TIMEOUT", "30s")
	viper.SetDefault("BITSBLOG_PUBLIC_ROUTE", "/")

	viper.SetDefault("AUTH_JWT_SECRET", "")
	viper.SetDefault("BITSBLOG_SERVICE_TOKEN", "")

	viper.SetDefault("UPLOAD_MAX_BYTES", 5<<20) // 5 MiB

	viper.SetDefault("AD_EXPIRATION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("AD_EXPIRATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.BitsBlog.URL = strings.TrimRight(config.BitsBlog.URL, "/")
	if config.BitsBlog.Timeout <= 0 {
		config.BitsBlog.Timeout = 30 * time.Second
	}
	if config.BitsBlog.PublicRoute == "" {
		config.BitsBlog.PublicRoute = "/"
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
