package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// DefaultLoginRateLimit is the ulule/limiter formatted rate applied to the
// auth routes when LOGIN_RATE_LIMIT is unset or malformed.
const DefaultLoginRateLimit = "5-M"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Feature toggles. The later iterations of the dashboard forked the
	// codebase per deployment; these flags parameterize one service instead.
	EnableBatchEntry  bool
	EnableAdminRollup bool

	// Login throttling
	LoginMaxAttempts int    // consecutive failures per session before lockout
	LoginRateLimit   string // ulule/limiter formatted rate for the auth routes
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "salestrack-app")
	viper.SetDefault("ENABLE_BATCH_ENTRY", false)
	viper.SetDefault("ENABLE_ADMIN_ROLLUP", true)
	viper.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_RATE_LIMIT", DefaultLoginRateLimit)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	loginMaxAttempts := viper.GetInt("LOGIN_MAX_ATTEMPTS")
	if loginMaxAttempts <= 0 {
		loginMaxAttempts = 5
		log.Printf("Warning: Invalid value for LOGIN_MAX_ATTEMPTS. Defaulting to %d.\n", loginMaxAttempts)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.EnableBatchEntry = viper.GetBool("ENABLE_BATCH_ENTRY")
	cfg.EnableAdminRollup = viper.GetBool("ENABLE_ADMIN_ROLLUP")
	cfg.LoginMaxAttempts = loginMaxAttempts

	// A malformed rate would otherwise wire a zero-value limit that blocks
	// every login.
	loginRateLimit := viper.GetString("LOGIN_RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(loginRateLimit); err != nil {
		log.Printf("Warning: Invalid value for LOGIN_RATE_LIMIT ('%s'). Defaulting to %s.\n", loginRateLimit, DefaultLoginRateLimit)
		loginRateLimit = DefaultLoginRateLimit
	}
	cfg.LoginRateLimit = loginRateLimit

	return cfg, nil
}
