// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs outgoing tag deltas.
	HashKey string
	Version string
}

// ClientAdapter holds the remote tag directory endpoint.
type ClientAdapter struct {
	// BaseURL always carries a scheme.
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientStorage holds the local SQLite journal location.
type ClientStorage struct {
	DSN string
}

// ClientWorkers holds the periodic sync job settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers

	LogFile string

	// Args are the positional arguments: the CLI verb and its operands.
	Args []string
}

// GetClientConfig loads the merged configuration and maps the fields the
// client runtime needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps and validates cfg into a ClientConfig.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        normalizeBaseURL(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: dsn},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		LogFile: cfg.LogFile,
		Args:    cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}

func normalizeBaseURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return strings.TrimRight(addr, "/")
}
