// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRequest() models.ApplyTagsRequest {
	return models.NewApplyTagsRequest(models.TagDelta{
		"tag1": models.SetOp(models.IntValue(1)),
		"tag2": models.SetOp(models.StringValue("two")),
		"old":  models.DeleteOp(),
	})
}

func signedRequest(t *testing.T, hasher *utils.Hasher) models.ApplyTagsRequest {
	t.Helper()
	req := validRequest()
	hash, err := hasher.SumJSON(req.Payload())
	require.NoError(t, err)
	req.Hash = hash
	return req
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewTagValidator(t *testing.T) {
	v := NewTagValidator(nil)
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewTagValidator(nil)
	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValueAreEquivalent(t *testing.T) {
	v := NewTagValidator(nil)
	req := validRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewTagValidator(nil)
	err := v.Validate(context.Background(), validRequest(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// ApplyTagsRequest
// ---------------------------------------------------------------------------

func TestValidate_ApplyTagsRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.ApplyTagsRequest)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(r *models.ApplyTagsRequest) {},
		},
		{
			name: "no changes",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Set, r.Delete, r.Length = nil, nil, 0
			},
			wantErr: ErrEmptyChanges,
		},
		{
			name:    "length mismatch",
			mutate:  func(r *models.ApplyTagsRequest) { r.Length = 7 },
			wantErr: ErrLengthMismatch,
		},
		{
			name: "empty set key",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Set[" "] = models.StringValue("x")
				r.Length++
			},
			wantErr: ErrInvalidTagKey,
		},
		{
			name: "too long delete key",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Delete = append(r.Delete, strings.Repeat("k", MaxTagKeyLength+1))
				r.Length++
			},
			wantErr: ErrInvalidTagKey,
		},
		{
			name: "too long value",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Set["tag1"] = models.StringValue(strings.Repeat("v", MaxTagValueLength+1))
			},
			wantErr: ErrInvalidTagValue,
		},
		{
			name: "set and delete same key",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Delete = append(r.Delete, "tag1")
				r.Length++
			},
			wantErr: ErrConflictingChange,
		},
		{
			name: "duplicate delete",
			mutate: func(r *models.ApplyTagsRequest) {
				r.Delete = append(r.Delete, "old")
				r.Length++
			},
			wantErr: ErrDuplicateDelete,
		},
	}

	v := NewTagValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ApplyTagsRequest_OnlySelectedFields(t *testing.T) {
	v := NewTagValidator(nil)
	req := validRequest()
	req.Length = 99

	assert.NoError(t, v.Validate(context.Background(), req, FieldChanges, FieldKeys))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldLength), ErrLengthMismatch)
}

func TestValidate_ApplyTagsRequest_Hash(t *testing.T) {
	hasher := utils.NewHasher("secret")
	v := NewTagValidator(hasher)

	t.Run("valid signature", func(t *testing.T) {
		req := signedRequest(t, hasher)
		assert.NoError(t, v.Validate(context.Background(), req))
	})

	t.Run("tampered payload", func(t *testing.T) {
		req := signedRequest(t, hasher)
		req.Set["tag1"] = models.IntValue(2)
		assert.ErrorIs(t, v.Validate(context.Background(), req), ErrInvalidHash)
	})

	t.Run("missing signature", func(t *testing.T) {
		req := validRequest()
		assert.ErrorIs(t, v.Validate(context.Background(), req), ErrInvalidHash)
	})

	t.Run("signed with another key", func(t *testing.T) {
		req := signedRequest(t, utils.NewHasher("other"))
		assert.ErrorIs(t, v.Validate(context.Background(), req, FieldHash), ErrInvalidHash)
	})
}

func TestValidate_ApplyTagsRequest_HashSurvivesWireDecoding(t *testing.T) {
	hasher := utils.NewHasher("secret")
	req := models.NewApplyTagsRequest(models.TagDelta{
		"counter": models.SetOp(models.IntValue(9007199254740993)),
		"ratio":   models.SetOp(models.FloatValue(0.1)),
	})
	hash, err := hasher.SumJSON(req.Payload())
	require.NoError(t, err)
	req.Hash = hash

	body, err := json.Marshal(req)
	require.NoError(t, err)
	var received models.ApplyTagsRequest
	require.NoError(t, json.Unmarshal(body, &received))

	assert.NoError(t, NewTagValidator(hasher).Validate(context.Background(), received))
	assert.Equal(t, "9007199254740993", received.Set["counter"].String())
}

func TestValidate_ApplyTagsRequest_HashIgnoredWithoutKey(t *testing.T) {
	v := NewTagValidator(utils.NewHasher(""))
	req := validRequest()
	req.Hash = "garbage"

	assert.NoError(t, v.Validate(context.Background(), req))
}

// ---------------------------------------------------------------------------
// Subscriber
// ---------------------------------------------------------------------------

func TestValidate_Subscriber(t *testing.T) {
	v := NewTagValidator(nil)

	assert.NoError(t, v.Validate(context.Background(), models.Subscriber{SubscriberID: "sub-1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.Subscriber{}), ErrEmptySubscriberID)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Subscriber{SubscriberID: "x"}, FieldHash), ErrUnknownField)
}
