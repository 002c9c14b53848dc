// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	clearPendingTags = `DELETE FROM pending_tags;`

	insertPendingTag = `
		INSERT INTO pending_tags (tag_key, op, value_kind, value_text)
		VALUES (?, ?, ?, ?);`

	selectPendingTags = `
		SELECT tag_key, op, value_kind, value_text
		FROM pending_tags
		ORDER BY tag_key;`

	upsertSession = `
		INSERT INTO session (id, subscriber_id, token, created_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET subscriber_id = excluded.subscriber_id,
			token = excluded.token,
			created_at = excluded.created_at;`

	selectSession = `
		SELECT subscriber_id, token, created_at
		FROM session
		WHERE id = 1;`
)
