// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"sync"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/samber/lo"
)

// EventName identifies a tag sync outcome.
type EventName string

const (
	// EventTagsSent fires once per attempt that called the directory and
	// succeeded. Empty attempts never fire it.
	EventTagsSent EventName = "tags_sent"

	// EventTagsSyncFailed fires once per attempt whose ApplyDelta failed.
	EventTagsSyncFailed EventName = "tags_sync_failed"
)

// TagEvent describes one finished attempt. Delta is a private copy of the
// changes the attempt sent. Err is set only for [EventTagsSyncFailed].
type TagEvent struct {
	Name  EventName
	Delta models.TagDelta
	Err   error
}

// EventHandler observes a [TagEvent].
type EventHandler func(TagEvent)

// Subscription cancels an observer registration. Unsubscribe may be called
// any number of times.
type Subscription interface {
	Unsubscribe()
}

type tagSignal struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventName]map[uint64]EventHandler

	logger *logger.Logger
}

// NewTagSignal returns a signal without observers.
func NewTagSignal(log *logger.Logger) TagEventSignal {
	return &tagSignal{
		handlers: make(map[EventName]map[uint64]EventHandler),
		logger:   log,
	}
}

func (s *tagSignal) Subscribe(name EventName, handler EventHandler) Subscription {
	if handler == nil {
		return &subscription{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	if s.handlers[name] == nil {
		s.handlers[name] = make(map[uint64]EventHandler)
	}
	s.handlers[name][id] = handler

	return &subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers[name], id)
	}}
}

func (s *tagSignal) Emit(event TagEvent) {
	s.mu.RLock()
	registered := s.handlers[event.Name]
	ids := lo.Keys(registered)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := lo.Map(ids, func(id uint64, _ int) EventHandler {
		return registered[id]
	})
	s.mu.RUnlock()

	for _, handler := range handlers {
		s.dispatch(handler, event)
	}
}

// dispatch keeps a panicking observer from taking the sync goroutine down.
func (s *tagSignal) dispatch(handler EventHandler, event TagEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("func", "tagSignal.dispatch").
				Str("event", string(event.Name)).
				Any("panic", r).
				Msg("tag event handler panicked")
		}
	}()
	handler(event)
}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
