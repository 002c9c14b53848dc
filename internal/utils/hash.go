// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests for transport integrity checks.
//
// Each Hasher owns a pool of hash.Hash instances configured with its key,
// so the client adapter and the server handler can use different keys in
// the same process (tests do).
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher returns a Hasher for hashKey. An empty key yields a disabled
// hasher whose SumJSON returns an empty string.
func NewHasher(hashKey string) *Hasher {
	h := &Hasher{hashKey: []byte(hashKey)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.hashKey)
	}
	return h
}

// Enabled reports whether a key is configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.hashKey) > 0
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumJSON JSON-encodes v and returns the hex digest of the encoding.
// It returns "" when the hasher is disabled.
func (h *Hasher) SumJSON(v any) (string, error) {
	if !h.Enabled() {
		return "", nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode payload for hashing: %w", err)
	}

	return hex.EncodeToString(h.Sum(payload)), nil
}

// Verify reports whether expectedHex is the digest of v. A disabled hasher
// accepts everything.
func (h *Hasher) Verify(v any, expectedHex string) bool {
	if !h.Enabled() {
		return true
	}

	got, err := h.SumJSON(v)
	if err != nil {
		return false
	}

	return hmac.Equal([]byte(got), []byte(expectedHex))
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. It does not use a pool; suitable for one-off hashing.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
