package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	appconfig "github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/config"
)

// Config represents database configuration
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	IsolationLevel  string
	SlowQuery       time.Duration
}

// FromAppConfig builds the adapter configuration from the loaded application config
func FromAppConfig(db appconfig.DatabaseConfig, logLevel string) *Config {
	return &Config{
		Host:            db.Host,
		Port:            ParsePort(db.Port),
		Username:        db.Username,
		Password:        db.Password,
		Database:        db.Database,
		SSLMode:         db.SSLMode,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		QueryTimeout:    db.QueryTimeout,
		LogLevel:        logLevel,
		RetryAttempts:   db.RetryAttempts,
		RetryDelay:      db.RetryDelay,
		IsolationLevel:  db.IsolationLevel,
		SlowQuery:       db.SlowQuery,
	}
}

// ParsePort converts a port string to int, returning 5432 on failure
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		return 5432
	}
	return p
}

var isolationLevels = map[string]string{
	"":                "",
	"read committed":  "READ COMMITTED",
	"repeatable read": "REPEATABLE READ",
	"serializable":    "SERIALIZABLE",
}

// IsolationSQL returns the SET TRANSACTION statement for the configured level, or "" for the server default
func (c *Config) IsolationSQL() string {
	level := isolationLevels[strings.ToLower(strings.TrimSpace(c.IsolationLevel))]
	if level == "" {
		return ""
	}
	return "SET TRANSACTION ISOLATION LEVEL " + level
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if _, ok := isolationLevels[strings.ToLower(strings.TrimSpace(c.IsolationLevel))]; !ok {
		return fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
