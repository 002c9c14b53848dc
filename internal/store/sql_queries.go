// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-tag-sync/models"
)

const (
	createSubscriber = `INSERT INTO subscribers (subscriber_id)
    VALUES ($1)
    RETURNING subscriber_id, created_at;`

	subscriberExists = `SELECT EXISTS (SELECT 1 FROM subscribers WHERE subscriber_id = $1);`

	upsertTagsConflict = `ON CONFLICT (subscriber_id, tag_key) DO UPDATE
    SET value_kind = EXCLUDED.value_kind, value_text = EXCLUDED.value_text, updated_at = NOW()`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertTagsQuery inserts or replaces every entry of set, in key order.
func buildUpsertTagsQuery(subscriberID string, set map[string]models.TagValue) (string, []any, error) {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	builder := psql.Insert("tags").
		Columns("subscriber_id", "tag_key", "value_kind", "value_text")
	for _, k := range keys {
		v := set[k]
		builder = builder.Values(subscriberID, k, string(v.Kind()), v.String())
	}

	return builder.Suffix(upsertTagsConflict).ToSql()
}

func buildDeleteTagsQuery(subscriberID string, keys []string) (string, []any, error) {
	return psql.Delete("tags").
		Where(sq.Eq{"subscriber_id": subscriberID}).
		Where(sq.Eq{"tag_key": keys}).
		ToSql()
}

func buildSelectTagsQuery(subscriberID string) (string, []any, error) {
	return psql.Select("tag_key", "value_kind", "value_text").
		From("tags").
		Where(sq.Eq{"subscriber_id": subscriberID}).
		OrderBy("tag_key").
		ToSql()
}
