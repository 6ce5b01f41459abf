package config

import (
	"log"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string `mapstructure:"FRONTEND_BASE_URL"`
	MigrationsPath    string

	// Rate limits in ulule/limiter format, e.g. "5-M"
	LoginRateLimit string
	APIRateLimit   string

	// Lease rules
	PaymentDueDayOptions domain.PaymentDueDayOptions
	HybridRentPolicy     domain.HybridPolicy

	// Approval events. An empty RedisAddr disables publishing to Redis.
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	ApprovalEventsChannel string

	MetricsEnabled bool
}

// LeaseRules returns the validation rules selected by configuration.
func (c *Config) LeaseRules() domain.LeaseRules {
	return domain.LeaseRules{DueDays: c.PaymentDueDayOptions}
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
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "lease-management-app")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("PAYMENT_DUE_DAY_OPTIONS", string(domain.DueDaysStandard))
	viper.SetDefault("HYBRID_RENT_POLICY", string(domain.HybridSum))
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("APPROVAL_EVENTS_CHANNEL", "lease-approval-events")
	viper.SetDefault("METRICS_ENABLED", true)

	// Environment variables override defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1 // Default to 1 hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "lease-management-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.PaymentDueDayOptions = domain.PaymentDueDayOptions(viper.GetString("PAYMENT_DUE_DAY_OPTIONS"))
	if cfg.PaymentDueDayOptions != domain.DueDaysStandard && cfg.PaymentDueDayOptions != domain.DueDaysAny {
		log.Printf("Warning: Invalid value for PAYMENT_DUE_DAY_OPTIONS ('%s'). Defaulting to %s.\n", cfg.PaymentDueDayOptions, domain.DueDaysStandard)
		cfg.PaymentDueDayOptions = domain.DueDaysStandard
	}

	cfg.HybridRentPolicy = domain.HybridPolicy(viper.GetString("HYBRID_RENT_POLICY"))
	if !cfg.HybridRentPolicy.IsValid() {
		log.Printf("Warning: Invalid value for HYBRID_RENT_POLICY ('%s'). Defaulting to %s.\n", cfg.HybridRentPolicy, domain.HybridSum)
		cfg.HybridRentPolicy = domain.HybridSum
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Approval events will only be logged.")
	}
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.ApprovalEventsChannel = viper.GetString("APPROVAL_EVENTS_CHANNEL")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	cfg.MetricsEnabled = viper.GetBool("METRICS_ENABLED")

	return cfg, nil
}
