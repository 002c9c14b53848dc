// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client's persisted identity at the remote tag directory.
type Session struct {
	SubscriberID string    `json:"subscriber_id"`
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsZero reports whether no session has been established.
func (s Session) IsZero() bool {
	return s.Token == ""
}
