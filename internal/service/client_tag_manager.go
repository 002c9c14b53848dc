// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/internal/validators"
	"github.com/MKhiriev/go-tag-sync/models"
)

// consentAcceptedValue is the tag value recorded for an accepted category.
const consentAcceptedValue = "1"

// tagManager wires the cache, the coordinator and the event signal of one
// client session. A nil journal disables persistence.
type tagManager struct {
	cache  TagDeltaCache
	syncer TagSyncCoordinator
	signal TagEventSignal
	remote adapter.RemoteTagClient

	journal   store.LocalTagRepository
	persistMu sync.Mutex
	subs      []Subscription

	// baseCtx is used for journal writes triggered by calls that carry no
	// context of their own.
	baseCtx context.Context

	logger *logger.Logger
}

// NewClientTagManager builds a manager with a fresh, empty cache. Pending
// changes are journaled to journal (when non-nil) after every mutation and
// every finished attempt.
func NewClientTagManager(remote adapter.RemoteTagClient, journal store.LocalTagRepository, log *logger.Logger) ClientTagManager {
	cache := NewTagDeltaCache()
	signal := NewTagSignal(log)

	m := &tagManager{
		cache:   cache,
		syncer:  NewTagSyncer(cache, remote, signal, log),
		signal:  signal,
		remote:  remote,
		journal: journal,
		baseCtx: context.Background(),
		logger:  log,
	}

	if journal != nil {
		persist := func(TagEvent) { m.persist(m.baseCtx) }
		m.subs = append(m.subs,
			signal.Subscribe(EventTagsSent, persist),
			signal.Subscribe(EventTagsSyncFailed, persist),
		)
	}

	return m
}

func (m *tagManager) Load(ctx context.Context) error {
	if m.journal == nil {
		return nil
	}

	delta, err := m.journal.LoadPending(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "tagManager.Load").Msg("loading pending tag journal failed")
		return fmt.Errorf("loading pending tags: %w", err)
	}

	m.cache.Restore(delta)

	m.logger.Debug().
		Str("func", "tagManager.Load").
		Int("pending", len(delta)).
		Msg("pending tag journal loaded")
	return nil
}

func (m *tagManager) StoreTagValuesToUpdate(values map[string]models.TagValue) {
	if len(values) == 0 {
		return
	}

	for key, value := range values {
		if !m.accepted(key, "tagManager.StoreTagValuesToUpdate") {
			continue
		}
		if err := validators.ValidateTagValue(value); err != nil {
			m.logger.Warn().Err(err).
				Str("func", "tagManager.StoreTagValuesToUpdate").
				Str("key", key).
				Msg("ignoring tag change the directory would reject")
			continue
		}
		m.cache.Put(key, value)
	}
	m.persist(m.baseCtx)
}

func (m *tagManager) StoreTagValuesToDelete(keys []string) {
	if len(keys) == 0 {
		return
	}

	for _, key := range keys {
		if !m.accepted(key, "tagManager.StoreTagValuesToDelete") {
			continue
		}
		m.cache.MarkDeleted(key)
	}
	m.persist(m.baseCtx)
}

func (m *tagManager) SendTags(ctx context.Context) error {
	return m.syncer.RequestSync(ctx, SyncEager)
}

func (m *tagManager) SyncTags(ctx context.Context) error {
	return m.syncer.RequestSync(ctx, SyncCoalescing)
}

func (m *tagManager) DownloadTags(ctx context.Context) (map[string]models.TagValue, error) {
	tags, err := m.remote.FetchAll(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "tagManager.DownloadTags").Msg("fetching tags failed")
		return nil, err
	}
	return tags, nil
}

func (m *tagManager) GetTags(ctx context.Context) (map[string]models.TagValue, error) {
	return m.DownloadTags(ctx)
}

func (m *tagManager) ConsentTags(ctx context.Context, accepted, rejected []string) error {
	values := make(map[string]models.TagValue, len(accepted))
	for _, key := range accepted {
		values[key] = models.StringValue(consentAcceptedValue)
	}

	m.StoreTagValuesToUpdate(values)
	m.StoreTagValuesToDelete(rejected)

	return m.SyncTags(ctx)
}

func (m *tagManager) Subscribe(name EventName, handler EventHandler) Subscription {
	return m.signal.Subscribe(name, handler)
}

func (m *tagManager) Pending() int {
	return len(m.cache.Outstanding())
}

func (m *tagManager) LastFailure() error {
	return m.syncer.LastFailure()
}

func (m *tagManager) Close() {
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.persist(m.baseCtx)
}

// persist overwrites the journal with every unconfirmed change. Failures are
// logged only; the in-memory cache stays authoritative.
func (m *tagManager) persist(ctx context.Context) {
	if m.journal == nil {
		return
	}

	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	if err := m.journal.ReplacePending(ctx, m.cache.Outstanding()); err != nil {
		m.logger.Err(err).Str("func", "tagManager.persist").Msg("writing pending tag journal failed")
	}
}

// accepted reports whether the directory would take key. Refused keys are
// never queued.
func (m *tagManager) accepted(key, caller string) bool {
	if err := validators.ValidateTagKey(key); err != nil {
		m.logger.Warn().Err(err).Str("func", caller).Msg("ignoring tag change with invalid key")
		return false
	}
	return true
}
