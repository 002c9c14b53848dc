// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists tags.
//
// The tag directory keeps every subscriber's confirmed tag set in
// PostgreSQL. The client keeps its pending tag delta and its session in a
// local SQLite file so that queued changes survive restarts.
package store

import (
	"context"

	"github.com/MKhiriev/go-tag-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TagRepository stores the confirmed tag sets of the directory.
type TagRepository interface {
	// ApplyDelta upserts the set entries and removes the deleted keys of
	// delta for subscriberID in one transaction.
	ApplyDelta(ctx context.Context, subscriberID string, delta models.TagDelta) error

	// GetTags returns the full tag set of subscriberID.
	GetTags(ctx context.Context, subscriberID string) (map[string]models.TagValue, error)
}

// SubscriberRepository stores registered subscribers.
type SubscriberRepository interface {
	CreateSubscriber(ctx context.Context, subscriber models.Subscriber) (models.Subscriber, error)
	SubscriberExists(ctx context.Context, subscriberID string) (bool, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
