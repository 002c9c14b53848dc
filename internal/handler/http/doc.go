// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the tag directory.
//
// It wires the chi routes, the tag and subscriber handlers, and the
// middleware chain (recovery, trace IDs, access logging, gzip, bearer
// authentication) in front of the service layer.
package http
