// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the tag
// directory server and the tag client.
//
// Sources are merged field by field; the first non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//  4. Built-in defaults
//
// [GetServerConfig] returns the server view and [GetClientConfig] the client
// view of the same [StructuredConfig].
package config
