// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "subscriberID", SubscriberIDCtxKey.String())
}

func TestGetSubscriberIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    WithSubscriberID(context.Background(), "sub-1"),
			wantID: "sub-1",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty",
			ctx:  WithSubscriberID(context.Background(), ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), SubscriberIDCtxKey, 42),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("otherKey"), "sub-1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetSubscriberIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
