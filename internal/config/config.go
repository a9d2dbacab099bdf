// Package config reads server settings from the environment, with
// command-line overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath string

	// Logging: debug, info, warn, error
	LogLevel string

	// Identity tokens. Without JWTSecret every call is anonymous; with it,
	// RequireAuth rejects calls that carry no valid token.
	JWTSecret   string
	RequireAuth bool
	// Lifetime of tokens signed by cmd/mint-token
	TokenTTL time.Duration

	// AMQP events, disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	// Optional YAML file applied at startup
	SeedFile string

	// malformed environment values, reported by Validate
	envErrors []string
}

func Load() *Config {
	c := &Config{
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", "./data/sharemates.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "sharemates"),

		SeedFile: getEnv("SEED_FILE", ""),
	}
	c.RequireAuth = c.getEnvBool("REQUIRE_AUTH", false)
	c.TokenTTL = c.getEnvDuration("TOKEN_TTL", 30*24*time.Hour)
	return c
}

// BindFlags registers command-line overrides on fs, defaulting to the values
// already in c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path to the SQLite database")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.RequireAuth, "require-auth", c.RequireAuth, "reject calls without a valid identity token")
	fs.StringVar(&c.AMQPURL, "amqp-url", c.AMQPURL, "RabbitMQ URL for ledger events (empty disables publishing)")
	fs.StringVar(&c.AMQPExchange, "amqp-exchange", c.AMQPExchange, "exchange that receives ledger events")
	fs.StringVar(&c.SeedFile, "seed", c.SeedFile, "YAML seed file applied at startup")
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	errors := append([]string(nil), c.envErrors...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.JWTSecret != "" && len(c.JWTSecret) < 16 {
		errors = append(errors, "JWT secret must be at least 16 characters")
	}
	if c.RequireAuth && c.JWTSecret == "" {
		errors = append(errors, "JWT secret is required when auth is required")
	}
	if c.TokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid token TTL %v: must be positive", c.TokenTTL))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			errors = append(errors, fmt.Sprintf("seed file not readable: %v", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			c.envErrors = append(c.envErrors, fmt.Sprintf("invalid %s '%s': must be a duration such as 720h", key, value))
			return defaultValue
		}
		return d
	}
	return defaultValue
}

func (c *Config) getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.envErrors = append(c.envErrors, fmt.Sprintf("invalid %s '%s': must be true or false", key, value))
			return defaultValue
		}
		return b
	}
	return defaultValue
}
