// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// Identifier strategies accepted by [App.IDStrategy].
const (
	// IDStrategyLength assigns currentLength+1 to a new record. An id freed
	// by a delete can be handed out again while another record still holds it.
	IDStrategyLength = "length"

	// IDStrategySequence assigns ids from a monotonic counter that never
	// goes backwards.
	IDStrategySequence = "sequence"
)

// Token comparison modes accepted by [App.TokenComparison].
const (
	TokenComparisonPlain    = "plain"
	TokenComparisonConstant = "constant"
)

// Storage drivers accepted by [Storage.Driver].
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite3"
	StorageDriverPostgres = "pgx"
)

const (
	defaultPort      = 3001
	defaultSQLiteDSN = "file::memory:?cache=shared"
)

// StructuredConfig is the top-level configuration container for the
// user registry server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, an optional JSON
// file and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds behaviour switches: id strategy, token comparison, log level.
	App App `envPrefix:"APP_"`

	// Auth holds the shared bearer secret.
	Auth Auth

	// Storage selects and configures the user store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and per-request settings.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups the application-level switches.
type App struct {
	// IDStrategy is one of [IDStrategyLength] or [IDStrategySequence].
	IDStrategy string `env:"ID_STRATEGY"`

	// TokenComparison is one of [TokenComparisonPlain] or
	// [TokenComparisonConstant].
	TokenComparison string `env:"TOKEN_COMPARISON"`

	// LogLevel is a zerolog level name. Empty means debug.
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the bearer token every route is gated by.
type Auth struct {
	// AccessToken is the shared secret. It is mandatory.
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Storage groups the configuration of the user store.
type Storage struct {
	// Driver is one of [StorageDriverMemory], [StorageDriverSQLite]
	// or [StorageDriverPostgres].
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQL connection settings. Ignored by the memory driver.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	// Port is the listen port used when HTTPAddress is empty.
	Port int `env:"PORT"`

	// HTTPAddress overrides Port with a full host:port address.
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every request when non-zero.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// CORSAllowedOrigins enables CORS for the listed origins when non-empty.
	CORSAllowedOrigins []string `env:"SERVER_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Address returns the address the HTTP server listens on.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig assembles the server configuration from all sources
// and validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON(args...).
		withFlags(args).
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			IDStrategy:      IDStrategyLength,
			TokenComparison: TokenComparisonPlain,
		},
		Storage: Storage{
			Driver: StorageDriverMemory,
		},
		Server: Server{
			Port: defaultPort,
		},
	}
}
