// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Subscriber is a registered owner of a tag set on the server.
type Subscriber struct {
	SubscriberID string     `json:"subscriber_id"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
