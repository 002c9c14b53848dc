// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind ValueKind
		wantText string
	}{
		{name: "integer", raw: "1", wantKind: KindNumber, wantText: "1"},
		{name: "negative float", raw: "-2.5", wantKind: KindNumber, wantText: "-2.5"},
		{name: "leading zero stays string", raw: "007", wantKind: KindString, wantText: "007"},
		{name: "exponent stays string", raw: "1e3", wantKind: KindString, wantText: "1e3"},
		{name: "plain text", raw: "gold", wantKind: KindString, wantText: "gold"},
		{name: "empty", raw: "", wantKind: KindString, wantText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseTagValue(tt.raw)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantText, v.String())
		})
	}
}

func TestTagValue_ZeroValueIsEmptyString(t *testing.T) {
	var v TagValue
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "", v.String())
	assert.False(t, v.IsNumber())
}

func TestTagValue_MarshalJSON(t *testing.T) {
	payload := map[string]TagValue{
		"n": IntValue(42),
		"f": FloatValue(0.5),
		"s": StringValue("x"),
	}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":42,"f":0.5,"s":"x"}`, string(b))
}

func TestTagValue_UnmarshalJSON(t *testing.T) {
	var got map[string]TagValue
	require.NoError(t, json.Unmarshal([]byte(`{"n": 1.0, "s": "1", "big": 12345678}`), &got))

	assert.Equal(t, KindNumber, got["n"].Kind())
	assert.Equal(t, "1.0", got["n"].String())
	assert.Equal(t, StringValue("1"), got["s"])
	assert.Equal(t, IntValue(12345678), got["big"])
}

func TestTagValue_JSONRoundTripKeepsLargeIntegers(t *testing.T) {
	for _, v := range []TagValue{
		IntValue(9007199254740993),
		IntValue(-9223372036854775808),
		FloatValue(0.1),
	} {
		t.Run(v.String(), func(t *testing.T) {
			b, err := json.Marshal(v)
			require.NoError(t, err)

			var got TagValue
			require.NoError(t, json.Unmarshal(b, &got))

			assert.Equal(t, v, got)

			again, err := json.Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, string(b), string(again))
		})
	}
}

func TestTagValue_UnmarshalJSON_RejectsOutOfRangeNumber(t *testing.T) {
	var v TagValue
	err := json.Unmarshal([]byte(`1e400`), &v)
	assert.ErrorIs(t, err, ErrInvalidTagValue)
}

func TestTagValue_UnmarshalJSON_RejectsNonScalars(t *testing.T) {
	for _, raw := range []string{`true`, `null`, `{}`, `[1]`} {
		t.Run(raw, func(t *testing.T) {
			var v TagValue
			err := json.Unmarshal([]byte(raw), &v)
			require.Error(t, err)
		})
	}
}

func TestNewTagValue(t *testing.T) {
	v, err := NewTagValue(KindNumber, "3")
	require.NoError(t, err)
	assert.Equal(t, IntValue(3), v)

	v, err = NewTagValue(KindString, "3")
	require.NoError(t, err)
	assert.Equal(t, StringValue("3"), v)

	_, err = NewTagValue(KindNumber, "three")
	assert.ErrorIs(t, err, ErrInvalidTagValue)

	_, err = NewTagValue("bool", "true")
	assert.ErrorIs(t, err, ErrInvalidTagValue)
}

func TestAppBuildInfo_JSON(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	raw, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"build_version":"1.0.0","build_date":"N/A","build_commit":"abc123"}`, string(raw))

	var decoded AppBuildInfo
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, info, decoded)
	assert.Contains(t, decoded.String(), "Build commit: abc123")
}
