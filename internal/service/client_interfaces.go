// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tag-sync/models"
)

// SyncMode selects how a sync request behaves when another sync is already
// running.
type SyncMode int

const (
	// SyncEager joins the running attempt and returns when it resolves. No
	// second network call is issued for this request.
	SyncEager SyncMode = iota

	// SyncCoalescing queues one follow-up attempt behind the running one. The
	// follow-up is skipped when nothing new was queued in the meantime.
	SyncCoalescing
)

func (m SyncMode) String() string {
	switch m {
	case SyncEager:
		return "eager"
	case SyncCoalescing:
		return "coalescing"
	default:
		return "unknown"
	}
}

// TagDeltaCache buffers tag changes that have not been confirmed by the
// remote directory. It is owned by the sync coordinator; callers reach it
// only through [ClientTagManager].
type TagDeltaCache interface {
	// Put queues a SET for key, replacing any pending change for it.
	Put(key string, value models.TagValue)

	// MarkDeleted queues a DELETE for key, discarding a pending SET.
	MarkDeleted(key string)

	// SnapshotAndClear atomically returns every pending change and empties
	// the cache. The returned delta is remembered as in flight until Ack or
	// Restore is called.
	SnapshotAndClear() models.TagDelta

	// Restore merges delta back after a failed attempt. Keys changed after
	// the snapshot keep their newer change.
	Restore(delta models.TagDelta)

	// Ack forgets the in-flight snapshot after a successful attempt.
	Ack()

	// Len returns the number of pending keys, excluding the in-flight snapshot.
	Len() int

	// Outstanding returns pending changes overlaid on the in-flight
	// snapshot: everything not yet confirmed by the directory.
	Outstanding() models.TagDelta
}

// TagSyncCoordinator guarantees at most one ApplyDelta call in flight and
// that no queued change is dropped between attempts.
type TagSyncCoordinator interface {
	// RequestSync triggers a sync in the given mode and waits for the attempt
	// (eager) or the whole round including follow-ups (coalescing) to finish
	// and for its observers to run.
	// The network call itself is never cancelled; a done ctx only stops the
	// caller from waiting.
	RequestSync(ctx context.Context, mode SyncMode) error

	// InFlight reports whether a network call is currently running.
	InFlight() bool

	// LastFailure returns the error of the latest attempt if it failed, nil
	// otherwise.
	LastFailure() error
}

// TagEventSignal dispatches sync outcomes to registered observers.
type TagEventSignal interface {
	// Subscribe registers handler for name. Handlers run synchronously on the
	// goroutine completing the attempt, one attempt at a time. A handler may
	// call RequestSync; that call returns once the result is known instead
	// of waiting for the remaining handlers.
	Subscribe(name EventName, handler EventHandler) Subscription

	// Emit delivers event to the handlers registered for event.Name in
	// registration order.
	Emit(event TagEvent)
}

// ClientTagManager is the public façade of the client tag core.
type ClientTagManager interface {
	// Load merges the journaled pending delta into the cache. Call it once,
	// before the first sync.
	Load(ctx context.Context) error

	// StoreTagValuesToUpdate queues a SET for every entry of values.
	StoreTagValuesToUpdate(values map[string]models.TagValue)

	// StoreTagValuesToDelete queues a DELETE for every key.
	StoreTagValuesToDelete(keys []string)

	// SendTags requests a sync in [SyncEager] mode.
	SendTags(ctx context.Context) error

	// SyncTags requests a sync in [SyncCoalescing] mode.
	SyncTags(ctx context.Context) error

	// DownloadTags returns the directory's tag set. The pending cache is not
	// consulted.
	DownloadTags(ctx context.Context) (map[string]models.TagValue, error)

	// GetTags is an alias of DownloadTags.
	GetTags(ctx context.Context) (map[string]models.TagValue, error)

	// ConsentTags records a consent-flow result: accepted categories are set
	// to "1", rejected ones are deleted, then a coalescing sync runs.
	ConsentTags(ctx context.Context, accepted, rejected []string) error

	Subscribe(name EventName, handler EventHandler) Subscription

	// Pending returns the number of keys not yet confirmed by the directory.
	Pending() int

	LastFailure() error

	// Close detaches the journal from the event signal and writes it one
	// last time.
	Close()
}

// ClientSessionService manages the client's identity at the directory.
type ClientSessionService interface {
	// Register creates a new subscriber and persists the issued session.
	Register(ctx context.Context) (models.Session, error)

	// Restore loads the persisted session and authenticates the adapter
	// with it. Returns ErrNotRegistered when no session exists.
	Restore(ctx context.Context) (models.Session, error)
}

// SyncTrigger is the part of [ClientTagManager] the background job drives.
type SyncTrigger interface {
	SyncTags(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls SyncTags.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to DefaultSyncJobInterval if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
