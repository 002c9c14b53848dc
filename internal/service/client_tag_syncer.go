// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
)

// syncAttempt is one snapshot-and-send cycle. err is readable after done
// is closed; settled closes once the attempt's event has been dispatched.
type syncAttempt struct {
	done    chan struct{}
	settled chan struct{}
	err     error
}

// syncRound is an attempt plus the coalesced follow-ups chained behind it.
// err is the error of the last attempt of the round.
type syncRound struct {
	done    chan struct{}
	settled chan struct{}
	err     error
}

func newSyncAttempt() *syncAttempt {
	return &syncAttempt{done: make(chan struct{}), settled: make(chan struct{})}
}

func newSyncRound() *syncRound {
	return &syncRound{done: make(chan struct{}), settled: make(chan struct{})}
}

type tagSyncer struct {
	cache  TagDeltaCache
	remote adapter.RemoteTagClient
	signal TagEventSignal

	// mu guards the fields below. It is never held across a network call
	// or while observers run.
	mu          sync.Mutex
	inFlight    bool
	followUp    bool
	attempt     *syncAttempt
	round       *syncRound
	lastFailure error

	// dispatching counts observer dispatches in progress. lastEmit closes
	// when the most recent dispatch finished; dispatches run in attempt
	// order.
	dispatching int
	lastEmit    chan struct{}

	logger *logger.Logger
}

// NewTagSyncer builds the coordinator that owns cache and is the only caller
// of remote.ApplyDelta.
func NewTagSyncer(cache TagDeltaCache, remote adapter.RemoteTagClient, signal TagEventSignal, log *logger.Logger) TagSyncCoordinator {
	return &tagSyncer{
		cache:  cache,
		remote: remote,
		signal: signal,
		logger: log,
	}
}

// RequestSync waits for the attempt or round to settle, that is until its
// observers have run. A call made while observers are running, typically
// from an observer itself, waits only for the result.
func (s *tagSyncer) RequestSync(ctx context.Context, mode SyncMode) error {
	s.mu.Lock()
	fromObserver := s.dispatching > 0

	if s.inFlight {
		if mode == SyncCoalescing {
			s.followUp = true
			round := s.round
			s.mu.Unlock()
			return waitRound(ctx, round, fromObserver)
		}

		att := s.attempt
		s.mu.Unlock()
		return waitAttempt(ctx, att, fromObserver)
	}

	att := newSyncAttempt()
	round := newSyncRound()
	s.inFlight = true
	s.attempt = att
	s.round = round
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "tagSyncer.RequestSync").
		Str("mode", mode.String()).
		Msg("starting tag sync round")

	go s.runRound(context.WithoutCancel(ctx), round, att)

	if mode == SyncCoalescing {
		return waitRound(ctx, round, fromObserver)
	}
	return waitAttempt(ctx, att, fromObserver)
}

func (s *tagSyncer) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

func (s *tagSyncer) LastFailure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFailure
}

// runRound runs att. A queued coalescing request with new changes starts
// the next attempt of the round on a fresh goroutine before att's observers
// run, so an observer may itself wait on the round.
func (s *tagSyncer) runRound(ctx context.Context, round *syncRound, att *syncAttempt) {
	event, err := s.runAttempt(ctx)

	s.mu.Lock()
	att.err = err
	round.err = err
	close(att.done)

	prevEmit := s.lastEmit
	emitted := make(chan struct{})
	s.lastEmit = emitted

	var next *syncAttempt
	if s.followUp && s.cache.Len() > 0 {
		next = newSyncAttempt()
		s.attempt = next
	} else {
		s.inFlight = false
		s.attempt = nil
		s.round = nil
	}
	s.followUp = false
	s.mu.Unlock()

	if next != nil {
		s.logger.Debug().
			Str("func", "tagSyncer.runRound").
			Msg("running coalesced follow-up sync")
		go s.runRound(ctx, round, next)
	} else {
		close(round.done)
	}

	s.dispatch(event, prevEmit, emitted)
	close(att.settled)
	if next == nil {
		close(round.settled)
	}
}

// dispatch delivers event after the previous attempt's observers are done.
// A nil event only keeps the chain.
func (s *tagSyncer) dispatch(event *TagEvent, prev <-chan struct{}, emitted chan struct{}) {
	defer close(emitted)

	if prev != nil {
		<-prev
	}
	if event == nil {
		return
	}

	s.mu.Lock()
	s.dispatching++
	s.mu.Unlock()

	s.signal.Emit(*event)

	s.mu.Lock()
	s.dispatching--
	s.mu.Unlock()
}

// runAttempt sends one snapshot. The returned event is nil for an empty
// snapshot.
func (s *tagSyncer) runAttempt(ctx context.Context) (*TagEvent, error) {
	delta := s.cache.SnapshotAndClear()
	if delta.IsEmpty() {
		return nil, nil
	}

	if err := s.remote.ApplyDelta(ctx, delta); err != nil {
		s.cache.Restore(delta)

		s.logger.Err(err).
			Str("func", "tagSyncer.runAttempt").
			Strs("keys", delta.Keys()).
			Msg("applying tag delta failed, changes restored")

		s.mu.Lock()
		s.lastFailure = err
		s.mu.Unlock()

		return &TagEvent{Name: EventTagsSyncFailed, Delta: delta.Clone(), Err: err},
			fmt.Errorf("%w: %w", ErrTagSyncFailed, err)
	}

	s.cache.Ack()

	s.mu.Lock()
	s.lastFailure = nil
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "tagSyncer.runAttempt").
		Int("changes", len(delta)).
		Msg("tag delta applied")

	return &TagEvent{Name: EventTagsSent, Delta: delta.Clone()}, nil
}

func waitAttempt(ctx context.Context, att *syncAttempt, resultOnly bool) error {
	ch := att.settled
	if resultOnly {
		ch = att.done
	}
	return wait(ctx, ch, func() error { return att.err })
}

func waitRound(ctx context.Context, round *syncRound, resultOnly bool) error {
	ch := round.settled
	if resultOnly {
		ch = round.done
	}
	return wait(ctx, ch, func() error { return round.err })
}

// wait blocks until done is closed or ctx is done.
func wait(ctx context.Context, done <-chan struct{}, result func() error) error {
	select {
	case <-done:
		return result()
	case <-ctx.Done():
		return ctx.Err()
	}
}
