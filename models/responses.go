// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TagsResponse is the body of GET /api/tags/: the server's full tag set for
// the authenticated subscriber.
type TagsResponse struct {
	// Tags maps tag name to its confirmed value.
	Tags map[string]TagValue `json:"tags"`

	// Length is len(Tags), provided so clients can validate the payload.
	Length int `json:"length"`
}

// SubscriberResponse is the body returned by POST /api/subscribers/.
// The bearer token itself travels in the Authorization response header.
type SubscriberResponse struct {
	SubscriberID string `json:"subscriber_id"`
}
