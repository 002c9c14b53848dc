// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, "127.0.0.1:9090", (&NetAddress{Host: "127.0.0.1", Port: 9090}).String())
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "any host", input: ":8080", want: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8081",
		"-d", "tags.db",
		"-config", "/etc/tags.json",
		"-hash-key", "hk",
		"-token-sign-key", "sk",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-request-timeout", "20s",
		"-r", "http://remote:8080",
		"-adapter-timeout", "3s",
		"-sync-interval", "1m",
		"-log-file", "client.log",
		"get",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "tags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/tags.json", cfg.JSONFilePath)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "sk", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://remote:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "client.log", cfg.LogFile)
	assert.Equal(t, []string{"get"}, cfg.Args)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
