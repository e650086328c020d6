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
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	Optimization Optimization `mapstructure:",squash"`
	Retention    Retention    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type LLM struct {
	URL         string `mapstructure:"llm_url"`
	APIKey      string `mapstructure:"llm_api_key"`
	Model       string `mapstructure:"llm_model"`
	MaxTokens   int    `mapstructure:"llm_max_tokens"`
	TimeoutSecs int    `mapstructure:"llm_timeout_seconds"`
}

// Optimization configura o loop de otimização de campanhas. Montada uma única
// vez na inicialização e passada explicitamente para o agendador; nunca lida
// ad hoc de dentro dos usecases.
type Optimization struct {
	CronSchedule          string `mapstructure:"optimization_cron"`
	Enabled               bool   `mapstructure:"optimization_enabled"`
	DryRun                bool   `mapstructure:"optimization_dry_run"`
	ScorerBackend         string `mapstructure:"optimization_scorer_backend"` // "rules" ou "llm"
	MaxConcurrentAccounts int    `mapstructure:"optimization_max_concurrent_accounts"`
	MaxParallelTargets    int    `mapstructure:"optimization_max_parallel_targets"`
	CallTimeoutSeconds    int    `mapstructure:"optimization_call_timeout_seconds"`
	MaxRetries            int    `mapstructure:"optimization_max_retries"`
	MetricsFreshnessDays  int    `mapstructure:"optimization_metrics_freshness_days"`
	HistoryLookbackDays   int    `mapstructure:"optimization_history_lookback_days"`
}

type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	Enabled      bool   `mapstructure:"retention_enabled"`
	MaxAgeDays   int    `mapstructure:"retention_max_age_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/optimizer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("LLM_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_MAX_TOKENS", 2048)
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)

	// Defaults do loop de otimização
	viper.SetDefault("OPTIMIZATION_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("OPTIMIZATION_ENABLED", false)
	viper.SetDefault("OPTIMIZATION_DRY_RUN", false)
	viper.SetDefault("OPTIMIZATION_SCORER_BACKEND", "rules")
	viper.SetDefault("OPTIMIZATION_MAX_CONCURRENT_ACCOUNTS", 3)
	viper.SetDefault("OPTIMIZATION_MAX_PARALLEL_TARGETS", 4)
	viper.SetDefault("OPTIMIZATION_CALL_TIMEOUT_SECONDS", 30)
	viper.SetDefault("OPTIMIZATION_MAX_RETRIES", 3)
	viper.SetDefault("OPTIMIZATION_METRICS_FRESHNESS_DAYS", 2)
	viper.SetDefault("OPTIMIZATION_HISTORY_LOOKBACK_DAYS", 3)

	// Defaults da retenção de snapshots
	viper.SetDefault("RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RETENTION_ENABLED", true)
	viper.SetDefault("RETENTION_MAX_AGE_DAYS", 90)

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
