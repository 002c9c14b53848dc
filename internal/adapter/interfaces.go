// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote tag directory.
//
// [RemoteTagClient] is the narrow contract the sync coordinator depends on.
// [ServerAdapter] adds the session plumbing the client runtime needs.
// Every error returned by the HTTP implementation wraps either [ErrNetwork]
// or [ErrServerRejected], so callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tag-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_tag_client_mock.go -package=mock

// RemoteTagClient applies tag deltas to, and reads tag sets from, the
// remote directory. Implementations never retry.
type RemoteTagClient interface {
	// ApplyDelta applies every entry of delta. A nil error means all entries
	// are durably applied server-side. An error may leave part of delta
	// applied; callers resend the whole delta.
	ApplyDelta(ctx context.Context, delta models.TagDelta) error

	// FetchAll returns the directory's current tag set for this subscriber.
	FetchAll(ctx context.Context) (map[string]models.TagValue, error)
}

// ServerAdapter is a [RemoteTagClient] that can also register a subscriber
// and carries the bearer token used by every authenticated call.
type ServerAdapter interface {
	RemoteTagClient

	// Register creates a new subscriber and stores the issued token.
	Register(ctx context.Context) (models.Session, error)

	// Version returns the directory's build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	SetToken(token string)
	Token() string
}
