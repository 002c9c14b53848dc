// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration shared by both binaries.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// LogFile is the client log path. Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// JSONFilePath is the optional JSON config file. Env: CONFIG
	JSONFilePath string `env:"CONFIG"`

	// Args holds positional command-line arguments left after flag parsing.
	// The client reads its verb from here.
	Args []string
}

// App holds keys and token parameters.
type App struct {
	// HashKey signs tag deltas with HMAC-SHA256. Both sides must agree.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version/. Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. The server expects a
// PostgreSQL DSN, the client a SQLite file path or URI.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the listener settings of the tag directory.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the remote tag directory.
type Adapter struct {
	// HTTPAddress is the directory base URL. A bare host:port gets an
	// http:// scheme. Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the client's coalescing sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Default values applied to fields left empty by every other source.
const (
	DefaultServerAddress  = "localhost:8080"
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAdapterTimeout = 10 * time.Second
	DefaultSyncInterval   = 30 * time.Second
	DefaultTokenIssuer    = "go-tag-sync"
	DefaultTokenDuration  = 30 * 24 * time.Hour
	DefaultClientDSN      = "tag-client.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
	}
}

// GetStructuredConfig merges every source without validating the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig loads the configuration and validates it for the tag
// directory server.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
