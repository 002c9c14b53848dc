// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ApplyTagsRequest is the body of PATCH /api/tags/. It carries one sync
// attempt's delta split into values to set and keys to delete.
type ApplyTagsRequest struct {
	// Set holds the tags to add or replace, keyed by tag name.
	Set map[string]TagValue `json:"set,omitempty"`

	// Delete lists the tag names to remove.
	Delete []string `json:"delete,omitempty"`

	// Length is the total number of changes (len(Set) + len(Delete)).
	// The server rejects the request when it does not match.
	Length int `json:"length"`

	// Hash is the hex HMAC-SHA256 of the JSON-encoded delta payload
	// (see [TagsPayload]). Empty when no hash key is configured.
	Hash string `json:"hash,omitempty"`
}

// NewApplyTagsRequest builds the request body for delta. Hash is left empty.
func NewApplyTagsRequest(delta TagDelta) ApplyTagsRequest {
	set, deleted := delta.Split()
	return ApplyTagsRequest{
		Set:    set,
		Delete: deleted,
		Length: len(set) + len(deleted),
	}
}

// Delta converts the request back into a [TagDelta].
func (r ApplyTagsRequest) Delta() TagDelta {
	return NewTagDelta(r.Set, r.Delete)
}

// Payload returns the part of the request covered by Hash.
func (r ApplyTagsRequest) Payload() TagsPayload {
	return TagsPayload{Set: r.Set, Delete: r.Delete}
}

// TagsPayload is the hashed portion of [ApplyTagsRequest]. Map keys are
// encoded in sorted order by encoding/json, so the encoding is deterministic.
type TagsPayload struct {
	Set    map[string]TagValue `json:"set,omitempty"`
	Delete []string            `json:"delete,omitempty"`
}
