// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"

	"github.com/samber/lo"
)

// OpKind identifies the kind of pending change for a single tag key.
type OpKind string

const (
	// OpSet adds a tag or replaces its value.
	OpSet OpKind = "set"
	// OpDelete removes a tag.
	OpDelete OpKind = "delete"
)

// TagOp is a single pending change. Value is meaningful only for [OpSet].
type TagOp struct {
	Kind  OpKind
	Value TagValue
}

// SetOp returns an [OpSet] change for v.
func SetOp(v TagValue) TagOp {
	return TagOp{Kind: OpSet, Value: v}
}

// DeleteOp returns an [OpDelete] change.
func DeleteOp() TagOp {
	return TagOp{Kind: OpDelete}
}

// TagDelta maps a tag key to its single pending change.
type TagDelta map[string]TagOp

// IsEmpty reports whether the delta carries no changes.
func (d TagDelta) IsEmpty() bool {
	return len(d) == 0
}

// Keys returns the delta keys in lexical order.
func (d TagDelta) Keys() []string {
	keys := lo.Keys(d)
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy; TagOp values are immutable so this is a full copy.
func (d TagDelta) Clone() TagDelta {
	out := make(TagDelta, len(d))
	for k, op := range d {
		out[k] = op
	}
	return out
}

// Chunk splits the delta into parts of at most size changes, taking keys in
// lexical order. A non-positive size returns the delta whole.
func (d TagDelta) Chunk(size int) []TagDelta {
	if d.IsEmpty() {
		return nil
	}
	if size <= 0 || len(d) <= size {
		return []TagDelta{d.Clone()}
	}

	return lo.Map(lo.Chunk(d.Keys(), size), func(keys []string, _ int) TagDelta {
		part := make(TagDelta, len(keys))
		for _, k := range keys {
			part[k] = d[k]
		}
		return part
	})
}

// Split partitions the delta into the values to set and the keys to delete.
// Deleted keys are returned in lexical order.
func (d TagDelta) Split() (map[string]TagValue, []string) {
	set := lo.MapValues(lo.PickBy(d, func(_ string, op TagOp) bool {
		return op.Kind == OpSet
	}), func(op TagOp, _ string) TagValue {
		return op.Value
	})

	deleted := lo.Keys(lo.PickBy(d, func(_ string, op TagOp) bool {
		return op.Kind == OpDelete
	}))
	sort.Strings(deleted)

	return set, deleted
}

// NewTagDelta rebuilds a delta from values to set and keys to delete. A key
// present in both ends up deleted.
func NewTagDelta(set map[string]TagValue, deleted []string) TagDelta {
	d := make(TagDelta, len(set)+len(deleted))
	for k, v := range set {
		d[k] = SetOp(v)
	}
	for _, k := range deleted {
		d[k] = DeleteOp()
	}
	return d
}
