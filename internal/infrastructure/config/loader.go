package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PAC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads configs/<env>.yaml from the given paths and applies environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.url", "http://localhost:3000")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, preview generation is slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.isolationLevel", "read committed")
	v.SetDefault("database.slowQueryMs", 200)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ledger.initialCredits", 3)
	v.SetDefault("ledger.defaultHistoryLimit", 50)
	v.SetDefault("ledger.maxHistoryLimit", 200)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dialTimeout", 5) // seconds

	v.SetDefault("generation.baseUrl", "https://api.replicate.com/v1")
	v.SetDefault("generation.modelVersion", "5599ed30703defd1d160a25a63321b4dec97101d98b4674bcc56e41f62f35637")
	v.SetDefault("generation.inferenceSteps", 4)
	v.SetDefault("generation.maxAttempts", 3)
	v.SetDefault("generation.retryBackoffMs", 1000)
	v.SetDefault("generation.concurrency", 4)
	v.SetDefault("generation.imageWidth", 1024)
	v.SetDefault("generation.imageHeight", 1024)
	v.SetDefault("generation.requestTimeout", 60) // seconds
	v.SetDefault("generation.pollIntervalMs", 1000)

	v.SetDefault("guard.backend", "postgres")
	v.SetDefault("guard.ttl", 120) // seconds

	v.SetDefault("reconciliation.enabled", true)
	v.SetDefault("reconciliation.schedule", "@every 1h")
	v.SetDefault("reconciliation.guardPurgeSchedule", "@every 10m")
}

// getEnvironment determines the environment to use based on PAC_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// Secrets are expected to come from the environment only.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_HOST":               "database.host",
		"DB_PORT":               "database.port",
		"DB_USERNAME":           "database.username",
		"DB_PASSWORD":           "database.password",
		"DB_NAME":               "database.database",
		"DB_SSL_MODE":           "database.sslMode",
		"SERVER_HOST":           "server.host",
		"SERVER_PORT":           "server.port",
		"LOGGER_LEVEL":          "logger.level",
		"APP_URL":               "app.url",
		"REDIS_ADDR":            "redis.addr",
		"REDIS_PASSWORD":        "redis.password",
		"STRIPE_SECRET_KEY":     "stripe.secretKey",
		"STRIPE_WEBHOOK_SECRET": "stripe.webhookSecret",
		"JWT_SECRET":            "auth.jwtSecret",
		"REPLICATE_API_TOKEN":   "generation.apiToken",
		"GUARD_BACKEND":         "guard.backend",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt(EnvPrefix+"_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt(EnvPrefix+"_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if initialCredits := getEnvInt(EnvPrefix+"_LEDGER_INITIAL_CREDITS", -1); initialCredits >= 0 {
		v.Set("ledger.initialCredits", initialCredits)
	}
	if maxAttempts := getEnvInt(EnvPrefix+"_GENERATION_MAX_ATTEMPTS", 0); maxAttempts > 0 {
		v.Set("generation.maxAttempts", maxAttempts)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.SlowQuery = config.Database.SlowQuery * time.Millisecond

	config.Redis.DialTimeout = config.Redis.DialTimeout * time.Second

	config.Generation.RetryBackoff = config.Generation.RetryBackoff * time.Millisecond
	config.Generation.RequestTimeout = config.Generation.RequestTimeout * time.Second
	config.Generation.PollInterval = config.Generation.PollInterval * time.Millisecond

	config.Guard.TTL = config.Guard.TTL * time.Second
}
