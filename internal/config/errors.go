// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
)
