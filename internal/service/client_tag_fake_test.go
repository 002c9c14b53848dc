// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/stretchr/testify/require"
)

// fakeRemote is a RemoteTagClient that records calls, can hold each call
// until the test releases it, and keeps the tag set it confirmed.
type fakeRemote struct {
	mu        sync.Mutex
	calls     []models.TagDelta
	errs      []error
	confirmed map[string]models.TagValue
	remote    map[string]models.TagValue
	fetchErr  error

	// started receives a copy of each delta when a call begins (optional).
	started chan models.TagDelta
	// release, when set, must receive once per call before it returns.
	release chan struct{}
	// delay is slept inside every call.
	delay time.Duration

	active    atomic.Int32
	maxActive atomic.Int32
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		confirmed: make(map[string]models.TagValue),
		remote:    make(map[string]models.TagValue),
	}
}

// blocking makes every call wait for release and report itself on started.
func (f *fakeRemote) blocking() *fakeRemote {
	f.started = make(chan models.TagDelta, 16)
	f.release = make(chan struct{})
	return f
}

// failNext makes the next len(errs) calls fail with errs in order.
func (f *fakeRemote) failNext(errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs[:0], make([]error, len(f.calls))...)
	f.errs = append(f.errs, errs...)
}

func (f *fakeRemote) ApplyDelta(_ context.Context, delta models.TagDelta) error {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		prev := f.maxActive.Load()
		if n <= prev || f.maxActive.CompareAndSwap(prev, n) {
			break
		}
	}

	f.mu.Lock()
	idx := len(f.calls)
	f.calls = append(f.calls, delta.Clone())
	var err error
	if idx < len(f.errs) {
		err = f.errs[idx]
	}
	f.mu.Unlock()

	if f.started != nil {
		f.started <- delta.Clone()
	}
	if f.release != nil {
		<-f.release
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for key, op := range delta {
		if op.Kind == models.OpDelete {
			delete(f.confirmed, key)
			continue
		}
		f.confirmed[key] = op.Value
	}
	return nil
}

func (f *fakeRemote) FetchAll(context.Context) (map[string]models.TagValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make(map[string]models.TagValue, len(f.remote))
	for k, v := range f.remote {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRemote) Calls() []models.TagDelta {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TagDelta(nil), f.calls...)
}

func (f *fakeRemote) Confirmed() map[string]models.TagValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.TagValue, len(f.confirmed))
	for k, v := range f.confirmed {
		out[k] = v
	}
	return out
}

// awaitCall waits for the next call to begin and returns its delta.
func (f *fakeRemote) awaitCall(t *testing.T) models.TagDelta {
	t.Helper()
	select {
	case d := <-f.started:
		return d
	case <-time.After(2 * time.Second):
		require.FailNow(t, "ApplyDelta was not called")
		return nil
	}
}

// releaseCall lets one blocked call return.
func (f *fakeRemote) releaseCall(t *testing.T) {
	t.Helper()
	select {
	case f.release <- struct{}{}:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no ApplyDelta call to release")
	}
}

// async runs fn in a goroutine and returns a channel with its result.
func async(fn func() error) <-chan error {
	ch := make(chan error, 1)
	go func() { ch <- fn() }()
	return ch
}

func awaitErr(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "call did not return")
		return nil
	}
}

// followUpQueued reports whether a coalescing request is waiting behind the
// running attempt.
func followUpQueued(s *tagSyncer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.followUp
}

func syncerOf(m ClientTagManager) *tagSyncer {
	return m.(*tagManager).syncer.(*tagSyncer)
}

func cacheOf(m ClientTagManager) TagDeltaCache {
	return m.(*tagManager).cache
}
