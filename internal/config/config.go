// Package config holds the account service configuration and its loader.
package config

import "time"

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=json console"`
	GinMode   string `koanf:"gin_mode" validate:"oneof=debug release test"`

	// Store selects the account store: postgres or memory.
	Store       string `koanf:"store" validate:"oneof=postgres memory"`
	DatabaseURL string `koanf:"database_url" validate:"required_if=Store postgres"`
	// Migrate applies the embedded schema migrations on start.
	Migrate bool `koanf:"migrate"`

	// RedisAddr enables the account view cache and event publishing when set.
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db" validate:"min=0"`
	// CacheTTL bounds how long a cached account view lives. Zero disables
	// expiry.
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"min=0"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "json",
		GinMode:         "release",
		Store:           StorePostgres,
		CacheTTL:        5 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
