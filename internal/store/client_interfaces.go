// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tag-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTagRepository is the client's journal of not-yet-confirmed tag
// changes plus its registration session.
type LocalTagRepository interface {
	// LoadPending returns the journaled delta, empty when nothing is queued.
	LoadPending(ctx context.Context) (models.TagDelta, error)

	// ReplacePending overwrites the journal with delta.
	ReplacePending(ctx context.Context, delta models.TagDelta) error

	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns ErrLocalSessionNotFound before registration.
	LoadSession(ctx context.Context) (models.Session, error)
}
