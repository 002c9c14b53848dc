// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. A version injected at build time
// takes precedence over cfg.Version; when neither is set the service cannot
// be created.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := buildInfo.BuildVersion()
	if version == "" || version == models.NotAvailable {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: models.NewAppBuildInfo(version, buildInfo.BuildDate(), buildInfo.BuildCommit()),
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
