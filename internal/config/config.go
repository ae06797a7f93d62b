package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"texttx"`
		Port      int    `envconfig:"PORT" default:"8080"`
		LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
		LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"texttx"`
		MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
		AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	AI struct {
		Enabled     bool          `envconfig:"AI_ENABLED" default:"true"`
		UseLearning bool          `envconfig:"AI_USE_LEARNING" default:"true"`
		Spelling    bool          `envconfig:"AI_SPELLING" default:"true"`
		APIKey      string        `envconfig:"OPENAI_API_KEY"`
		BaseURL     string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
		Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
		Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"20s"`
		RateLimit   float64       `envconfig:"AI_RATE_LIMIT" default:"2"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	TUI struct {
		UserID string `envconfig:"TUI_USER_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// ProviderEnabled reports whether the external extraction provider can be called.
func (c *Config) ProviderEnabled() bool {
	return c.AI.Enabled && c.AI.APIKey != ""
}

// Logger builds the process logger from the App section.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.App.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
