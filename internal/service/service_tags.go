// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/models"
)

type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

func (s *tagService) ApplyTags(ctx context.Context, subscriberID string, request models.ApplyTagsRequest) error {
	if err := s.tagRepository.ApplyDelta(ctx, subscriberID, request.Delta()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagService.ApplyTags").
			Str("subscriber_id", subscriberID).
			Msg("applying tag delta failed")
		return fmt.Errorf("applying tag delta: %w", err)
	}
	return nil
}

func (s *tagService) GetTags(ctx context.Context, subscriberID string) (models.TagsResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, subscriberID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagService.GetTags").
			Str("subscriber_id", subscriberID).
			Msg("reading tags failed")
		return models.TagsResponse{}, fmt.Errorf("reading tags: %w", err)
	}
	if tags == nil {
		tags = map[string]models.TagValue{}
	}

	return models.TagsResponse{Tags: tags, Length: len(tags)}, nil
}
