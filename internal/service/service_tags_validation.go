// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/internal/validators"
	"github.com/MKhiriev/go-tag-sync/models"
)

// validationErrors translates validator failures into the service errors
// the HTTP layer knows how to report.
var validationErrors = map[error]error{
	validators.ErrEmptySubscriberID: ErrValidationNoSubscriberID,
	validators.ErrEmptyChanges:      ErrValidationNoTagsProvided,
	validators.ErrLengthMismatch:    ErrValidationTagsLengthMismatch,
	validators.ErrInvalidTagKey:     ErrValidationInvalidTagKey,
	validators.ErrInvalidTagValue:   ErrInvalidDataProvided,
	validators.ErrConflictingChange: ErrValidationConflictingTagChange,
	validators.ErrDuplicateDelete:   ErrInvalidDataProvided,
	validators.ErrInvalidHash:       ErrValidationTagsHashMismatch,
}

type TagValidationService struct {
	inner     TagService
	validator validators.Validator
}

// NewTagValidationService returns a wrapper that validates requests, and
// verifies their HMAC when hasher has a key, before calling the inner
// service.
func NewTagValidationService(hasher *utils.Hasher) TagServiceWrapper {
	return &TagValidationService{
		validator: validators.NewTagValidator(hasher),
	}
}

func (v *TagValidationService) ApplyTags(ctx context.Context, subscriberID string, request models.ApplyTagsRequest) error {
	if err := v.validateSubscriber(ctx, subscriberID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during tag changes validation: %w", translateValidationError(err))
	}

	return v.inner.ApplyTags(ctx, subscriberID, request)
}

func (v *TagValidationService) GetTags(ctx context.Context, subscriberID string) (models.TagsResponse, error) {
	if err := v.validateSubscriber(ctx, subscriberID); err != nil {
		return models.TagsResponse{}, err
	}

	return v.inner.GetTags(ctx, subscriberID)
}

func (v *TagValidationService) Wrap(wrapped TagService) TagService {
	v.inner = wrapped
	return v
}

func (v *TagValidationService) validateSubscriber(ctx context.Context, subscriberID string) error {
	if err := v.validator.Validate(ctx, models.Subscriber{SubscriberID: subscriberID}); err != nil {
		return translateValidationError(err)
	}
	return nil
}

// translateValidationError keeps the validator error in the chain and adds
// the matching service error in front of it.
func translateValidationError(err error) error {
	for target, mapped := range validationErrors {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", mapped, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
