package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrNoSurface                   = errors.New("neither telegram token nor http address is configured")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`            // Telegram API token loaded from environment
	DatasetPath      string `mapstructure:"dataset_path"` // optional JSON dataset overriding the embedded one
	Quiz             Quiz   `mapstructure:"quiz"`         // quiz generation and session settings
	HTTP             HTTP   `mapstructure:"http"`         // JSON API settings
	DB               DB     `mapstructure:"database"`     // database configuration section
}

// Quiz contains quiz generation and session parameters.
type Quiz struct {
	QuestionCount   int           `mapstructure:"question_count"`   // default questions per quiz for new chats
	DistractorCount int           `mapstructure:"distractor_count"` // wrong options per question
	SessionTTL      time.Duration `mapstructure:"session_ttl"`      // unfinished sessions older than this are dropped
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"` // how often expired sessions are looked for
}

// HTTP contains JSON API parameters. An empty Addr disables the API.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether chat settings should be kept in PostgreSQL.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load(viper.New(), "./config")
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("dataset_path", "")
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.distractor_count", 3)
	v.SetDefault("quiz.session_ttl", "24h")
	v.SetDefault("quiz.cleanup_interval", "10m")
	v.SetDefault("http.addr", "")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.TelegramAPIToken == "" && cfg.HTTP.Addr == "" {
		return nil, ErrNoSurface
	}

	if cfg.Quiz.SessionTTL <= 0 || cfg.Quiz.CleanupInterval <= 0 {
		return nil, fmt.Errorf("quiz session_ttl and cleanup_interval must be positive")
	}

	return &cfg, nil
}
