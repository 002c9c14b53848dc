// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestTagDeltaCache_PutOverwritesPreviousChange(t *testing.T) {
	c := NewTagDeltaCache()

	c.Put("tag1", models.IntValue(1))
	c.Put("tag1", models.IntValue(2))

	assert.Equal(t, models.TagDelta{"tag1": models.SetOp(models.IntValue(2))}, c.SnapshotAndClear())
}

func TestTagDeltaCache_MarkDeletedDiscardsPendingSet(t *testing.T) {
	c := NewTagDeltaCache()

	c.Put("tag1", models.IntValue(1))
	c.MarkDeleted("tag1")

	assert.Equal(t, models.TagDelta{"tag1": models.DeleteOp()}, c.SnapshotAndClear())
}

func TestTagDeltaCache_PutAfterDelete(t *testing.T) {
	c := NewTagDeltaCache()

	c.MarkDeleted("tag1")
	c.Put("tag1", models.StringValue("back"))

	assert.Equal(t, models.TagDelta{"tag1": models.SetOp(models.StringValue("back"))}, c.SnapshotAndClear())
}

func TestTagDeltaCache_SnapshotAndClear(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	c.MarkDeleted("b")

	snapshot := c.SnapshotAndClear()

	assert.Len(t, snapshot, 2)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.SnapshotAndClear().IsEmpty(), "second snapshot must be empty")
}

func TestTagDeltaCache_SnapshotIsDetached(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))

	snapshot := c.SnapshotAndClear()
	snapshot["b"] = models.DeleteOp()

	assert.Equal(t, models.TagDelta{"a": models.SetOp(models.IntValue(1))}, c.Outstanding())
}

func TestTagDeltaCache_RestoreKeepsNewerChanges(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	c.Put("b", models.IntValue(1))
	snapshot := c.SnapshotAndClear()

	// changed while the snapshot was in flight
	c.Put("a", models.IntValue(2))

	c.Restore(snapshot)

	assert.Equal(t, models.TagDelta{
		"a": models.SetOp(models.IntValue(2)),
		"b": models.SetOp(models.IntValue(1)),
	}, c.SnapshotAndClear())
}

func TestTagDeltaCache_RestoreKeepsNewerDelete(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	snapshot := c.SnapshotAndClear()

	c.MarkDeleted("a")
	c.Restore(snapshot)

	assert.Equal(t, models.TagDelta{"a": models.DeleteOp()}, c.SnapshotAndClear())
}

func TestTagDeltaCache_Outstanding(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	c.Put("b", models.IntValue(1))
	c.SnapshotAndClear()

	c.MarkDeleted("b")
	c.Put("c", models.IntValue(3))

	assert.Equal(t, models.TagDelta{
		"a": models.SetOp(models.IntValue(1)),
		"b": models.DeleteOp(),
		"c": models.SetOp(models.IntValue(3)),
	}, c.Outstanding())
	assert.Equal(t, 2, c.Len(), "Len counts only pending keys")
}

func TestTagDeltaCache_AckForgetsInFlight(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	c.SnapshotAndClear()

	c.Ack()

	assert.Empty(t, c.Outstanding())
}

func TestTagDeltaCache_RestoreClearsInFlight(t *testing.T) {
	c := NewTagDeltaCache()
	c.Put("a", models.IntValue(1))
	snapshot := c.SnapshotAndClear()

	c.Restore(snapshot)
	c.SnapshotAndClear()
	c.Ack()

	assert.Empty(t, c.Outstanding())
}

func TestTagDeltaCache_ConcurrentPutsAreNotLost(t *testing.T) {
	c := NewTagDeltaCache()
	collected := make(models.TagDelta)
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Put(fmt.Sprintf("k%d", i), models.IntValue(int64(i)))
			if i%5 == 0 {
				snap := c.SnapshotAndClear()
				mu.Lock()
				for k, op := range snap {
					collected[k] = op
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	for k, op := range c.SnapshotAndClear() {
		collected[k] = op
	}
	assert.Len(t, collected, 50)
}
