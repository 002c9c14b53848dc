// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/mock"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTagService_ApplyTags_PassesDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTagRepository(ctrl)
	svc := NewTagService(repo, logger.Nop())

	req := models.NewApplyTagsRequest(models.TagDelta{
		"tag1": models.SetOp(models.IntValue(1)),
		"old":  models.DeleteOp(),
	})
	repo.EXPECT().ApplyDelta(gomock.Any(), "sub-1", models.TagDelta{
		"tag1": models.SetOp(models.IntValue(1)),
		"old":  models.DeleteOp(),
	}).Return(nil)

	require.NoError(t, svc.ApplyTags(context.Background(), "sub-1", req))
}

func TestTagService_ApplyTags_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTagRepository(ctrl)
	svc := NewTagService(repo, logger.Nop())

	repo.EXPECT().ApplyDelta(gomock.Any(), "sub-1", gomock.Any()).Return(store.ErrSubscriberNotFound)

	err := svc.ApplyTags(context.Background(), "sub-1", models.NewApplyTagsRequest(models.TagDelta{"a": models.DeleteOp()}))

	assert.ErrorIs(t, err, store.ErrSubscriberNotFound)
}

func TestTagService_GetTags(t *testing.T) {
	tests := []struct {
		name string
		repo map[string]models.TagValue
		want models.TagsResponse
	}{
		{
			name: "tags present",
			repo: map[string]models.TagValue{"a": models.IntValue(1), "b": models.StringValue("on")},
			want: models.TagsResponse{
				Tags:   map[string]models.TagValue{"a": models.IntValue(1), "b": models.StringValue("on")},
				Length: 2,
			},
		},
		{
			name: "nil becomes empty",
			repo: nil,
			want: models.TagsResponse{Tags: map[string]models.TagValue{}, Length: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockTagRepository(ctrl)
			svc := NewTagService(repo, logger.Nop())

			repo.EXPECT().GetTags(gomock.Any(), "sub-1").Return(tt.repo, nil)

			got, err := svc.GetTags(context.Background(), "sub-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagService_GetTags_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTagRepository(ctrl)
	svc := NewTagService(repo, logger.Nop())

	repo.EXPECT().GetTags(gomock.Any(), "sub-1").Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetTags(context.Background(), "sub-1")

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
