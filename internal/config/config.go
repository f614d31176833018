package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Audit       Audit       `mapstructure:",squash"`
	BudgetWatch BudgetWatch `mapstructure:",squash"`
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

	MaxOpenConns int `mapstructure:"database_max_open_conns"`
}

type Meta struct {
	BaseURL            string `mapstructure:"meta_base_url"`
	URL                string `mapstructure:"meta_url"`
	Version            string `mapstructure:"meta_version"`
	AccessToken        string `mapstructure:"meta_access_token"`
	AdAccountID        string `mapstructure:"meta_ad_account_id"`
	AppID              string `mapstructure:"meta_app_id"`
	AppSecret          string `mapstructure:"meta_app_secret"`
	HTTPTimeoutSeconds int    `mapstructure:"meta_http_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Audit struct {
	Enabled bool `mapstructure:"audit_enabled"`
}

type BudgetWatch struct {
	CronSchedule string  `mapstructure:"budget_watch_cron"`
	Threshold    float64 `mapstructure:"budget_watch_threshold"`
	Enabled      bool    `mapstructure:"budget_watch_enabled"`
}

// Nomes das variáveis de ambiente usados no diagnóstico da integração
const (
	KeyAppID       = "META_APP_ID"
	KeyAppSecret   = "META_APP_SECRET"
	KeyAccessToken = "META_ACCESS_TOKEN"
	KeyAdAccountID = "META_AD_ACCOUNT_ID"
)

// HasCredentials indica se existem token e conta de anúncios para chamar a API do Meta
func (m Meta) HasCredentials() bool {
	return strings.TrimSpace(m.AccessToken) != "" && strings.TrimSpace(m.AdAccountID) != ""
}

// MissingKeys retorna as variáveis de configuração do Meta que não foram informadas
func (m Meta) MissingKeys() []string {
	missing := make([]string, 0, 4)
	values := []struct {
		key   string
		value string
	}{
		{KeyAppID, m.AppID},
		{KeyAppSecret, m.AppSecret},
		{KeyAccessToken, m.AccessToken},
		{KeyAdAccountID, m.AdAccountID},
	}

	for _, v := range values {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.key)
		}
	}

	return missing
}

// ActID retorna o identificador da conta no formato esperado pela Graph API (act_<id>)
func (m Meta) ActID() string {
	id := strings.TrimSpace(m.AdAccountID)
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsets?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_HTTP_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUDIT_ENABLED", false) // Registro das alterações de status no Postgres

	viper.SetDefault("BUDGET_WATCH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("BUDGET_WATCH_THRESHOLD", 0.8)
	viper.SetDefault("BUDGET_WATCH_ENABLED", false)

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

	config.Finalize()

	return config, nil
}

// Finalize preenche os campos derivados da configuração
func (c *Config) Finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	if c.Meta.HTTPTimeoutSeconds <= 0 {
		c.Meta.HTTPTimeoutSeconds = 30
	}

	if c.BudgetWatch.Threshold <= 0 {
		c.BudgetWatch.Threshold = 0.8
	}

	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 4
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
