// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the vault server. It
// is populated by merging a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// Breach keys keep the unprefixed names operators already use for the
	// breach intelligence upstreams.
	Breach Breach

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a .env file loaded before the
	// environment is parsed. Env: ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds identity verification and build settings.
type App struct {
	// TokenSignKey is the HMAC secret shared with the identity provider and
	// used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim. Empty disables the check.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// Server holds listener addresses and timeouts for the inbound transports.
type Server struct {
	// HTTPAddress is the host:port the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// GRPCAddress is the host:port of the gRPC health endpoint. Empty
	// disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds relational database connection settings.
type DB struct {
	// DSN selects the engine by scheme: postgres:// for PostgreSQL,
	// sqlite:// or file: for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`

	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS" envDefault:"4"`
}

// Breach configures the upstream leaked-credential services.
type Breach struct {
	// RangeURL is the k-anonymity range endpoint; the prefix is appended.
	// Env: PWNED_RANGE_URL
	RangeURL string `env:"PWNED_RANGE_URL" envDefault:"https://api.pwnedpasswords.com/range/"`

	// APIBase is the base of the breached-account API.
	// Env: HIBP_API_BASE
	APIBase string `env:"HIBP_API_BASE" envDefault:"https://haveibeenpwned.com/api/v3"`

	// APIKey is sent as the hibp-api-key header. The default is the
	// provider's public test key.
	// Env: HIBP_API_KEY
	APIKey string `env:"HIBP_API_KEY" envDefault:"00000000000000000000000000000000"`

	// Env: BREACH_USER_AGENT
	UserAgent string `env:"BREACH_USER_AGENT" envDefault:"PasswordVault/1.0"`

	// Env: BREACH_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"BREACH_CONNECT_TIMEOUT" envDefault:"8s"`

	// Env: BREACH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"BREACH_REQUEST_TIMEOUT" envDefault:"12s"`

	// CacheMaxAge is the max-age, in seconds, advertised on range responses.
	// Env: BREACH_CACHE_MAX_AGE
	CacheMaxAge int `env:"BREACH_CACHE_MAX_AGE" envDefault:"300"`
}

// GetStructuredConfig loads the configuration from the process environment
// and command line. Sources are applied in this order, later non-zero values
// overriding earlier ones:
//  1. .env file (only fills variables not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is [GetStructuredConfig] with explicit arguments.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
