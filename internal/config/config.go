package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every environment-driven setting of the server.
type Config struct {
	Port string

	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	AdminPassword     string
	AdminPasswordHash string

	JWTSecret string
	JWTTTL    time.Duration

	GeminiAPIKey string
	GeminiModel  string

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("GIN_MODE", "release")

	cfg := &Config{
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash:  v.GetString("ADMIN_PASSWORD_HASH"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		GeminiModel:        v.GetString("GEMINI_MODEL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		GinMode:            v.GetString("GIN_MODE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.DBMaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
