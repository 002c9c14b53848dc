// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-tag-sync/models"
)

type tagDeltaCache struct {
	mu sync.Mutex

	// pending collects changes made since the last snapshot.
	pending models.TagDelta

	// inFlight is the last snapshot, kept until the attempt resolves.
	inFlight models.TagDelta
}

// NewTagDeltaCache returns an empty cache.
func NewTagDeltaCache() TagDeltaCache {
	return &tagDeltaCache{pending: make(models.TagDelta)}
}

func (c *tagDeltaCache) Put(key string, value models.TagValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[key] = models.SetOp(value)
}

func (c *tagDeltaCache) MarkDeleted(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[key] = models.DeleteOp()
}

func (c *tagDeltaCache) SnapshotAndClear() models.TagDelta {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.pending
	c.pending = make(models.TagDelta)
	if snapshot.IsEmpty() {
		c.inFlight = nil
	} else {
		c.inFlight = snapshot
	}
	return snapshot.Clone()
}

func (c *tagDeltaCache) Restore(delta models.TagDelta) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, op := range delta {
		if _, changed := c.pending[key]; changed {
			continue
		}
		c.pending[key] = op
	}
	c.inFlight = nil
}

func (c *tagDeltaCache) Ack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = nil
}

func (c *tagDeltaCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *tagDeltaCache) Outstanding() models.TagDelta {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.inFlight.Clone()
	for key, op := range c.pending {
		out[key] = op
	}
	return out
}
