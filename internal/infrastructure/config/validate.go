package config

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Validate ensures all required configuration values are present.
// Production-only concerns are reported as warnings.
func Validate(cfg *Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	required := []struct {
		value string
		key   string
		env   string
	}{
		{cfg.Database.Host, "database.host", "DB_HOST"},
		{cfg.Database.Port, "database.port", "DB_PORT"},
		{cfg.Database.Username, "database.username", "DB_USERNAME"},
		{cfg.Database.Password, "database.password", "DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "DB_NAME"},
		{cfg.Auth.JWTSecret, "auth.jwtSecret", "JWT_SECRET"},
		{cfg.Stripe.SecretKey, "stripe.secretKey", "STRIPE_SECRET_KEY"},
		{cfg.Stripe.WebhookSecret, "stripe.webhookSecret", "STRIPE_WEBHOOK_SECRET"},
		{cfg.Generation.APIToken, "generation.apiToken", "REPLICATE_API_TOKEN"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s_%s environment variable)", r.key, EnvPrefix, r.env))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Ledger.MaxHistoryLimit < cfg.Ledger.DefaultHistoryLimit {
		return fmt.Errorf("ledger.maxHistoryLimit (%d) must not be below ledger.defaultHistoryLimit (%d)",
			cfg.Ledger.MaxHistoryLimit, cfg.Ledger.DefaultHistoryLimit)
	}
	if cfg.Ledger.InitialCredits < 0 {
		return fmt.Errorf("ledger.initialCredits must not be negative, got %d", cfg.Ledger.InitialCredits)
	}

	switch cfg.Guard.Backend {
	case "postgres":
	case "redis":
		if cfg.Redis.Addr == "" {
			missingConfigs = append(missingConfigs, "redis.addr (required by guard.backend=redis)")
		}
	default:
		return fmt.Errorf("invalid guard.backend: %q, must be postgres or redis", cfg.Guard.Backend)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != Development &&
		cfg.Environment != Production &&
		cfg.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, Development, Production, Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == Production {
		if warnings := productionWarnings(cfg); len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}

func productionWarnings(cfg *Config) []string {
	var warnings []string

	sslMode := strings.ToLower(cfg.Database.SSLMode)
	if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
	}
	if strings.HasPrefix(cfg.Stripe.SecretKey, "sk_test_") {
		warnings = append(warnings, "stripe.secretKey is a test mode key")
	}
	return warnings
}
