package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted, e.g. "100-M"
	RedisURL           string // Empty disables report caching
	ReportCacheTTL     time.Duration
	ReportingCurrency  domain.Currency
	SecondaryCurrency  domain.Currency
	Salespeople        domain.SalespersonRoster
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "backoffice-auth")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REPORT_CACHE_TTL", "2m")
	viper.SetDefault("REPORTING_CURRENCY", string(domain.USD))
	viper.SetDefault("SECONDARY_CURRENCY", string(domain.NIO))
	viper.SetDefault("SALESPEOPLE", "Carlos Méndez,María López,José Ramírez")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set to a non-default value when IS_PRODUCTION is true")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.RedisURL = viper.GetString("REDIS_URL")
	ttlStr := viper.GetString("REPORT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 2 * time.Minute
		log.Printf("Warning: Invalid value for REPORT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.ReportCacheTTL = ttl

	cfg.ReportingCurrency = domain.Currency(strings.ToUpper(viper.GetString("REPORTING_CURRENCY")))
	if cfg.ReportingCurrency != domain.ReportingCurrency {
		log.Printf("Warning: REPORTING_CURRENCY %q is not supported. Using %s.\n", cfg.ReportingCurrency, domain.ReportingCurrency)
		cfg.ReportingCurrency = domain.ReportingCurrency
	}
	cfg.SecondaryCurrency = domain.Currency(strings.ToUpper(viper.GetString("SECONDARY_CURRENCY")))
	if !cfg.SecondaryCurrency.IsSupported() || cfg.SecondaryCurrency == cfg.ReportingCurrency {
		log.Printf("Warning: SECONDARY_CURRENCY %q is not supported. Using %s.\n", cfg.SecondaryCurrency, domain.NIO)
		cfg.SecondaryCurrency = domain.NIO
	}

	cfg.Salespeople = domain.SalespersonRoster(splitList(viper.GetString("SALESPEOPLE")))
	if len(cfg.Salespeople) == 0 {
		log.Println("Warning: SALESPEOPLE is empty. Commission entries will be rejected.")
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
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
