// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tag-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// TagService serves the directory side of tag synchronization.
type TagService interface {
	// ApplyTags applies one client delta for subscriberID atomically.
	ApplyTags(ctx context.Context, subscriberID string, request models.ApplyTagsRequest) error

	// GetTags returns the full tag set of subscriberID.
	GetTags(ctx context.Context, subscriberID string) (models.TagsResponse, error)
}

type AuthService interface {
	RegisterSubscriber(ctx context.Context) (models.Subscriber, error)
	CreateToken(ctx context.Context, subscriber models.Subscriber) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// TagServiceWrapper defines middleware composition for TagService.
// Implementations wrap an existing TagService to add behavior such as
// validating.
type TagServiceWrapper interface {
	Wrap(TagService) TagService // returns a decorated TagService applying additional behavior
}
