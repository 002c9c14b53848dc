// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagDelta_Split(t *testing.T) {
	d := TagDelta{
		"b":    SetOp(IntValue(2)),
		"a":    SetOp(StringValue("x")),
		"gone": DeleteOp(),
		"old":  DeleteOp(),
	}

	set, deleted := d.Split()

	assert.Equal(t, map[string]TagValue{"a": StringValue("x"), "b": IntValue(2)}, set)
	assert.Equal(t, []string{"gone", "old"}, deleted)
}

func TestTagDelta_Keys_Sorted(t *testing.T) {
	d := TagDelta{"z": DeleteOp(), "a": DeleteOp(), "m": SetOp(IntValue(1))}
	assert.Equal(t, []string{"a", "m", "z"}, d.Keys())
}

func TestTagDelta_CloneIsIndependent(t *testing.T) {
	d := TagDelta{"a": SetOp(IntValue(1))}
	c := d.Clone()
	c["b"] = DeleteOp()

	assert.Len(t, d, 1)
	assert.Len(t, c, 2)
}

func TestTagDelta_Chunk(t *testing.T) {
	d := TagDelta{
		"a": SetOp(IntValue(1)),
		"b": DeleteOp(),
		"c": SetOp(StringValue("c")),
		"d": DeleteOp(),
		"e": SetOp(FloatValue(0.5)),
	}

	parts := d.Chunk(2)

	require.Len(t, parts, 3)
	assert.Equal(t, TagDelta{"a": SetOp(IntValue(1)), "b": DeleteOp()}, parts[0])
	assert.Equal(t, TagDelta{"c": SetOp(StringValue("c")), "d": DeleteOp()}, parts[1])
	assert.Equal(t, TagDelta{"e": SetOp(FloatValue(0.5))}, parts[2])
}

func TestTagDelta_Chunk_Whole(t *testing.T) {
	d := TagDelta{"a": DeleteOp(), "b": DeleteOp()}

	assert.Equal(t, []TagDelta{d}, d.Chunk(2))
	assert.Equal(t, []TagDelta{d}, d.Chunk(0))
	assert.Nil(t, TagDelta{}.Chunk(2))
}

func TestNewTagDelta_DeleteWinsOverSet(t *testing.T) {
	d := NewTagDelta(map[string]TagValue{"a": IntValue(1), "b": IntValue(2)}, []string{"a"})

	assert.Equal(t, DeleteOp(), d["a"])
	assert.Equal(t, SetOp(IntValue(2)), d["b"])
}

func TestApplyTagsRequest_RoundTrip(t *testing.T) {
	d := TagDelta{"tag1": SetOp(IntValue(1)), "tag2": SetOp(StringValue("two")), "tag3": DeleteOp()}
	req := NewApplyTagsRequest(d)
	assert.Equal(t, 3, req.Length)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"set":{"tag1":1,"tag2":"two"},"delete":["tag3"],"length":3}`, string(b))

	var decoded ApplyTagsRequest
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, d, decoded.Delta())
}
