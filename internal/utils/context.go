// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the tag
// directory server: context keys, HMAC hashing, JSON responses, the resty
// HTTP client wrapper, JWT issue/verify and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubscriberIDCtxKey stores the authenticated subscriber identifier in a
// request context. Written by the auth middleware.
var SubscriberIDCtxKey = contextKey("subscriberID")

// GetSubscriberIDFromContext returns the subscriber ID placed by the auth
// middleware. ok is false when the value is missing, empty or of another type.
func GetSubscriberIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SubscriberIDCtxKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithSubscriberID returns a copy of ctx carrying subscriberID.
func WithSubscriberID(ctx context.Context, subscriberID string) context.Context {
	return context.WithValue(ctx, SubscriberIDCtxKey, subscriberID)
}
