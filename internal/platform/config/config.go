package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Chain oracle access
	InfuraAPIKey string
	InfuraRPCURL string

	// Payment reconciliation
	ReconcileInterval  time.Duration
	ReconcileBatchSize int

	CORSOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "crypto-payment-system")
	viper.SetDefault("INFURA_API_KEY", "")
	viper.SetDefault("INFURA_RPC_URL", "https://mainnet.infura.io/v3")
	viper.SetDefault("RECONCILE_INTERVAL", "2m")
	viper.SetDefault("RECONCILE_BATCH_SIZE", 100)
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.InfuraAPIKey = viper.GetString("INFURA_API_KEY")
	if cfg.InfuraAPIKey == "" {
		log.Println("Warning: INFURA_API_KEY not set. Chain balance checks will report payments as pending.")
	}
	cfg.InfuraRPCURL = viper.GetString("INFURA_RPC_URL")

	reconcileIntervalStr := viper.GetString("RECONCILE_INTERVAL")
	reconcileInterval, err := time.ParseDuration(reconcileIntervalStr)
	if err != nil || reconcileInterval <= 0 {
		reconcileInterval = 2 * time.Minute
		log.Printf("Warning: Invalid value for RECONCILE_INTERVAL ('%s'). Defaulting to %s.\n", reconcileIntervalStr, reconcileInterval.String())
	}
	cfg.ReconcileInterval = reconcileInterval

	cfg.ReconcileBatchSize = viper.GetInt("RECONCILE_BATCH_SIZE")
	if cfg.ReconcileBatchSize <= 0 {
		cfg.ReconcileBatchSize = 100
	}

	cfg.CORSOrigins = strings.Split(viper.GetString("CORS_ORIGINS"), ",")

	return cfg, nil
}
