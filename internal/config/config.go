package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Analytics      Analytics      `mapstructure:",squash"`
	SnapshotReport SnapshotReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database é opcional: quando URL está vazia o dataset vem dos arquivos JSON.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset aponta para o diretório com os cinco arquivos JSON de entrada.
type Dataset struct {
	Dir string `mapstructure:"dataset_dir"`
}

// Analytics concentra os limiares do motor de análise. São parâmetros
// nomeados e sobrescrevíveis por ambiente, não constantes mágicas.
type Analytics struct {
	StaleDays            int     `mapstructure:"analytics_stale_days"`
	LowActivityDays      int     `mapstructure:"analytics_low_activity_days"`
	HighValueThreshold   float64 `mapstructure:"analytics_high_value_threshold"`
	MinRepDeals          int     `mapstructure:"analytics_min_rep_deals"`
	RecoveryRate         float64 `mapstructure:"analytics_recovery_rate"`
	IndustryWinRateMin   float64 `mapstructure:"analytics_industry_win_rate_min"`
	MaxRecommendations   int     `mapstructure:"analytics_max_recommendations"`
	StaleDealsLimit      int     `mapstructure:"analytics_stale_deals_limit"`
	UnderperformersLimit int     `mapstructure:"analytics_underperformers_limit"`
	LowActivityLimit     int     `mapstructure:"analytics_low_activity_limit"`
	TrendMonths          int     `mapstructure:"analytics_trend_months"`
}

type SnapshotReport struct {
	CronSchedule string `mapstructure:"snapshot_report_cron"`
	Enabled      bool   `mapstructure:"snapshot_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "") // vazio = carregar dos arquivos JSON
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_DIR", "data")

	// Limiares do motor de análise
	viper.SetDefault("ANALYTICS_STALE_DAYS", 30)
	viper.SetDefault("ANALYTICS_LOW_ACTIVITY_DAYS", 30)
	viper.SetDefault("ANALYTICS_HIGH_VALUE_THRESHOLD", 50000)
	viper.SetDefault("ANALYTICS_MIN_REP_DEALS", 5)
	viper.SetDefault("ANALYTICS_RECOVERY_RATE", 0.3)
	viper.SetDefault("ANALYTICS_INDUSTRY_WIN_RATE_MIN", 25)
	viper.SetDefault("ANALYTICS_MAX_RECOMMENDATIONS", 5)
	viper.SetDefault("ANALYTICS_STALE_DEALS_LIMIT", 10)
	viper.SetDefault("ANALYTICS_UNDERPERFORMERS_LIMIT", 5)
	viper.SetDefault("ANALYTICS_LOW_ACTIVITY_LIMIT", 15)
	viper.SetDefault("ANALYTICS_TREND_MONTHS", 6)

	viper.SetDefault("SNAPSHOT_REPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SNAPSHOT_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
