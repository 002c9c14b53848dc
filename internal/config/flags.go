// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args with a dedicated FlagSet and returns the values
// found plus the remaining positional arguments in Args.
//
// Flags:
//
//	-a                 server listen address host:port
//	-d                 database DSN (PostgreSQL on the server, SQLite on the client)
//	-c, -config        JSON config file
//	-hash-key          HMAC key for tag deltas
//	-token-sign-key    JWT signing key
//	-token-issuer      JWT issuer
//	-token-duration    JWT lifetime (e.g. 24h)
//	-request-timeout   server request timeout
//	-r                 remote tag directory base URL
//	-adapter-timeout   client request timeout
//	-sync-interval     client periodic sync interval
//	-log-file          client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-tag-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		databaseDSN    string
		jsonConfigPath string
		hashKey        string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		adapterAddress string
		adapterTimeout time.Duration
		syncInterval   time.Duration
		logFile        string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Tag delta hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&adapterAddress, "r", "", "Remote tag directory address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:       hashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		LogFile:      logFile,
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. Host must be an IP literal or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}
	if host == "" {
		host = "0.0.0.0"
	}

	a.Host = host
	a.Port = port
	return nil
}
