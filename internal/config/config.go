package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig      `mapstructure:"ai"`
	Static   StaticConfig  `mapstructure:"static"`
	Demo     DemoConfig    `mapstructure:"demo"`
	Tracing  TracingConfig `mapstructure:"tracing"`
	CORS     CORSConfig    `mapstructure:"cors"`

	// Runtime flags set from the command line, never from the config file.
	MigrateOnly bool `mapstructure:"-"` // run migrations and exit
	ResetSchema bool `mapstructure:"-"` // drop and recreate all tables before migrating
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig supports three backends. URL (postgres/postgresql scheme)
// takes precedence, then an explicit driver, otherwise an embedded sqlite
// file so the server can run with no external services.
type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"`
	URL       string `mapstructure:"url"`
	Path      string `mapstructure:"path"`
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool `mapstructure:"parse_time"`
}

type AIConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	APIKey         string  `mapstructure:"api_key"`
	Model          string  `mapstructure:"model"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	Temperature    float32 `mapstructure:"temperature"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type DemoConfig struct {
	LearnerID uint `mapstructure:"learner_id"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LEARNSPHERE")
	viper.AutomaticEnv()

	setDefaults()

	// Server
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Database
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// AI
	viper.BindEnv("ai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("ai.base_url", "OPENAI_BASE_URL")
	viper.BindEnv("ai.model", "OPENAI_MODEL")

	// Static SPA bundle
	viper.BindEnv("static.dir", "STATIC_DIR")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		// The server must boot with nothing but environment variables,
		// so a missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "mysql" && cfg.Database.DBName == "" {
		return nil, fmt.Errorf("database.dbname is required when driver is mysql")
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return nil, fmt.Errorf("ai.temperature %.2f out of range [0, 2]", cfg.AI.Temperature)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.path", "learning_platform.db")
	viper.SetDefault("database.charset", "utf8mb4")
	viper.SetDefault("database.parse_time", true)

	viper.SetDefault("ai.model", "gpt-3.5-turbo")
	viper.SetDefault("ai.max_tokens", 2000)
	viper.SetDefault("ai.temperature", 0.7)
	viper.SetDefault("ai.timeout_seconds", 60)

	viper.SetDefault("static.dir", "frontend/build")
	viper.SetDefault("demo.learner_id", 1)

	viper.SetDefault("tracing.collector_endpoint", "http://localhost:14268/api/traces")
	viper.SetDefault("cors.allowed_origins", []string{"*"})
}

// EffectiveDriver resolves which database backend to open. A postgres URL
// wins over everything, then an explicitly configured driver, and sqlite is
// the fallback so `go run .` works out of the box.
func (d DatabaseConfig) EffectiveDriver() string {
	if d.URL != "" && hasPostgresScheme(d.URL) {
		return "postgres"
	}
	if d.Driver != "" {
		return d.Driver
	}
	return "sqlite"
}

func hasPostgresScheme(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
