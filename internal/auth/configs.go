package auth

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings for token issuing and the user store.
type Config struct {
	// JWTSecret signs and verifies bearer tokens (HS256).
	JWTSecret string

	// JWTExpirationS is the token lifetime in seconds.
	JWTExpirationS int

	// Issuer is stamped into the token's iss claim.
	Issuer string

	// Postgres connection settings for the user store.
	Postgres PostgresConfig
}

// PostgresConfig describes the user-store database connection.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the connection string for the postgres driver.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Default values for configuration.
const (
	DefaultJWTExpirationS = 3600
	DefaultIssuer         = "semcat"
)

// NewConfig reads the auth configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		JWTSecret: os.Getenv("SECRET_KEY"),
		Issuer:    DefaultIssuer,
		Postgres: PostgresConfig{
			Host:     envOr("POSTGRES_HOST", "localhost"),
			Port:     envOr("POSTGRES_PORT", "5432"),
			User:     envOr("POSTGRES_USER", "semcat"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   envOr("POSTGRES_DB", "semcat"),
			SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
		},
	}
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.JWTExpirationS = n
		}
	}
	return cfg
}

// Validate ensures required fields are present once defaults are applied.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("auth: missing SECRET_KEY")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
