// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
)

type Services struct {
	AuthService    AuthService
	TagService     TagService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("creating app info service: %w", err)
	}

	tagService := NewTagValidationService(utils.NewHasher(cfg.App.HashKey)).
		Wrap(NewTagService(repositories.TagRepository, logger))

	return &Services{
		AuthService:    NewAuthService(repositories.SubscriberRepository, cfg.App, logger),
		TagService:     tagService,
		AppInfoService: appInfoService,
	}, nil
}
