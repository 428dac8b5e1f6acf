package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("configuração inválida")

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Targets    Targets    `mapstructure:",squash"`
	Upload     Upload     `mapstructure:",squash"`
	DataReload DataReload `mapstructure:",squash"`
	Holidays   Holidays   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Targets são os valores padrão do cálculo de metas
type Targets struct {
	BaseYears       string  `mapstructure:"target_base_years"`
	OptimisticPct   float64 `mapstructure:"target_optimistic_pct"`
	ConservativePct float64 `mapstructure:"target_conservative_pct"`
	DuplicatePolicy string  `mapstructure:"duplicate_policy"`
	Horizon         int     `mapstructure:"projection_horizon"`
}

type Upload struct {
	MaxBytes      int64 `mapstructure:"upload_max_bytes"`
	RatePerMinute int   `mapstructure:"upload_rate_per_minute"`
	RateBurst     int   `mapstructure:"upload_rate_burst"`
}

// DataReload configura a recarga agendada do conjunto de dados a partir de um arquivo local
type DataReload struct {
	File         string `mapstructure:"data_file"`
	CronSchedule string `mapstructure:"data_reload_cron"`
	Enabled      bool   `mapstructure:"data_reload_enabled"`
}

type Holidays struct {
	File string `mapstructure:"holidays_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("TARGET_BASE_YEARS", "2021,2022,2024")
	viper.SetDefault("TARGET_OPTIMISTIC_PCT", 5)      // 5% acima da média
	viper.SetDefault("TARGET_CONSERVATIVE_PCT", 10)   // 10% abaixo da média
	viper.SetDefault("DUPLICATE_POLICY", "overwrite") // Última linha vence
	viper.SetDefault("PROJECTION_HORIZON", 6)         // 6 meses à frente

	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20)   // 10 MiB
	viper.SetDefault("UPLOAD_RATE_PER_MINUTE", 30) // 30 envios por minuto
	viper.SetDefault("UPLOAD_RATE_BURST", 5)

	viper.SetDefault("DATA_FILE", "")
	viper.SetDefault("DATA_RELOAD_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("DATA_RELOAD_ENABLED", false)

	viper.SetDefault("HOLIDAYS_FILE", "") // Vazio usa a tabela embarcada

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita valores que impediriam o cálculo de metas ou o agendamento da recarga
func (c *Config) Validate() error {
	var problems []string

	if c.Targets.OptimisticPct < 0 || c.Targets.OptimisticPct > 100 {
		problems = append(problems, "TARGET_OPTIMISTIC_PCT deve estar entre 0 e 100")
	}
	if c.Targets.ConservativePct < 0 || c.Targets.ConservativePct > 100 {
		problems = append(problems, "TARGET_CONSERVATIVE_PCT deve estar entre 0 e 100")
	}
	if c.Targets.Horizon <= 0 {
		problems = append(problems, "PROJECTION_HORIZON deve ser positivo")
	}
	if c.Upload.MaxBytes <= 0 {
		problems = append(problems, "UPLOAD_MAX_BYTES deve ser positivo")
	}
	if c.DataReload.Enabled && c.DataReload.File == "" {
		problems = append(problems, "DATA_RELOAD_ENABLED exige DATA_FILE")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
