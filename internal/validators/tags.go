// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
)

const (
	FieldSubscriberID = "subscriber_id"
	FieldChanges      = "changes"
	FieldLength       = "length"
	FieldKeys         = "keys"
	FieldValues       = "values"
	FieldConflicts    = "conflicts"
	FieldHash         = "hash"
)

const (
	// MaxTagKeyLength is the longest tag key accepted, in bytes.
	MaxTagKeyLength = 128
	// MaxTagValueLength is the longest tag value text accepted, in characters.
	MaxTagValueLength = 255
)

// TagValidator checks tag change requests received by the directory.
type TagValidator struct {
	hasher *utils.Hasher
}

// NewTagValidator returns a validator that also verifies request hashes
// when hasher has a key.
func NewTagValidator(hasher *utils.Hasher) Validator {
	return &TagValidator{hasher: hasher}
}

func (v *TagValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ApplyTagsRequest:
		return v.validateApplyTagsRequest(ctx, value, fields...)
	case *models.ApplyTagsRequest:
		return v.validateApplyTagsRequest(ctx, *value, fields...)

	case models.Subscriber:
		return v.validateSubscriber(ctx, value, fields...)
	case *models.Subscriber:
		return v.validateSubscriber(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TagValidator) validateApplyTagsRequest(_ context.Context, request models.ApplyTagsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldLength, FieldKeys, FieldValues, FieldConflicts, FieldHash}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if len(request.Set)+len(request.Delete) == 0 {
				return ErrEmptyChanges
			}
		case FieldLength:
			if request.Length != len(request.Set)+len(request.Delete) {
				return ErrLengthMismatch
			}
		case FieldKeys:
			for key := range request.Set {
				if err := ValidateTagKey(key); err != nil {
					return err
				}
			}
			for i, key := range request.Delete {
				if err := ValidateTagKey(key); err != nil {
					return fmt.Errorf("validation error at delete index %d: %w", i, err)
				}
			}
		case FieldValues:
			for key, value := range request.Set {
				if err := ValidateTagValue(value); err != nil {
					return fmt.Errorf("%w: value of %q is too long", ErrInvalidTagValue, key)
				}
			}
		case FieldConflicts:
			seen := make(map[string]struct{}, len(request.Delete))
			for _, key := range request.Delete {
				if _, ok := request.Set[key]; ok {
					return fmt.Errorf("%w: %q", ErrConflictingChange, key)
				}
				if _, ok := seen[key]; ok {
					return fmt.Errorf("%w: %q", ErrDuplicateDelete, key)
				}
				seen[key] = struct{}{}
			}
		case FieldHash:
			if !v.hasher.Verify(request.Payload(), request.Hash) {
				return ErrInvalidHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TagValidator) validateSubscriber(_ context.Context, subscriber models.Subscriber, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubscriberID}
	}

	for _, f := range fields {
		switch f {
		case FieldSubscriberID:
			if strings.TrimSpace(subscriber.SubscriberID) == "" {
				return ErrEmptySubscriberID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateTagKey rejects empty keys and keys over [MaxTagKeyLength] bytes.
// Clients apply it before queueing so the directory never sees such a key.
func ValidateTagKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidTagKey)
	}
	if len(key) > MaxTagKeyLength {
		return fmt.Errorf("%w: key longer than %d bytes", ErrInvalidTagKey, MaxTagKeyLength)
	}
	return nil
}

// ValidateTagValue rejects values whose text exceeds [MaxTagValueLength]
// characters.
func ValidateTagValue(value models.TagValue) error {
	if utf8.RuneCountInString(value.String()) > MaxTagValueLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidTagValue, MaxTagValueLength)
	}
	return nil
}
