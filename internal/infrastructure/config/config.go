package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	App            AppConfig            `mapstructure:"app"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Ledger         LedgerConfig         `mapstructure:"ledger"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Stripe         StripeConfig         `mapstructure:"stripe"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Generation     GenerationConfig     `mapstructure:"generation"`
	Guard          GuardConfig          `mapstructure:"guard"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
}

// AppConfig contains settings about the public web application
type AppConfig struct {
	URL            string   `mapstructure:"url"` // checkout redirects come back here
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	SlowQuery       time.Duration `mapstructure:"slowQueryMs"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Development bool   `mapstructure:"development"`
}

// LedgerConfig contains credit ledger settings
type LedgerConfig struct {
	InitialCredits      int64 `mapstructure:"initialCredits"`
	DefaultHistoryLimit int   `mapstructure:"defaultHistoryLimit"`
	MaxHistoryLimit     int   `mapstructure:"maxHistoryLimit"`
}

// RedisConfig contains the optional Redis connection used by the request guard
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// StripeConfig contains payment provider credentials
type StripeConfig struct {
	SecretKey     string `mapstructure:"secretKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
}

// AuthConfig contains bearer token verification settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// GenerationConfig contains image provider settings
type GenerationConfig struct {
	APIToken       string        `mapstructure:"apiToken"`
	BaseURL        string        `mapstructure:"baseUrl"`
	ModelVersion   string        `mapstructure:"modelVersion"`
	InferenceSteps int           `mapstructure:"inferenceSteps"`
	MaxAttempts    int           `mapstructure:"maxAttempts"`
	RetryBackoff   time.Duration `mapstructure:"retryBackoffMs"` // milliseconds
	Concurrency    int           `mapstructure:"concurrency"`
	ImageWidth     int           `mapstructure:"imageWidth"`
	ImageHeight    int           `mapstructure:"imageHeight"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
	PollInterval   time.Duration `mapstructure:"pollIntervalMs"` // milliseconds
}

// GuardConfig selects and tunes the request guard
type GuardConfig struct {
	Backend string        `mapstructure:"backend"` // postgres or redis
	TTL     time.Duration `mapstructure:"ttl"`     // seconds
}

// ReconciliationConfig contains the housekeeping job schedules
type ReconciliationConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Schedule           string `mapstructure:"schedule"`
	GuardPurgeSchedule string `mapstructure:"guardPurgeSchedule"`
}
