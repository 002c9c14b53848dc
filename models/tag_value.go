// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ValueKind is the closed set of scalar kinds a tag value can take.
type ValueKind string

const (
	// KindString marks a textual tag value. It is sent to the remote
	// directory as a JSON string.
	KindString ValueKind = "string"

	// KindNumber marks a numeric tag value. It is sent to the remote
	// directory as a JSON number using its canonical decimal text.
	KindNumber ValueKind = "number"
)

// ErrInvalidTagValue is returned when a JSON value is neither a string nor a
// number, or when a stored kind is unknown.
var ErrInvalidTagValue = errors.New("invalid tag value")

// TagValue is a stringifiable scalar attached to a tag key.
//
// The zero value is the empty string. Values are immutable; use the
// constructors below instead of composite literals.
type TagValue struct {
	kind ValueKind
	text string
}

// StringValue returns a textual tag value.
func StringValue(s string) TagValue {
	return TagValue{kind: KindString, text: s}
}

// IntValue returns a numeric tag value holding an integer.
func IntValue(i int64) TagValue {
	return TagValue{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// FloatValue returns a numeric tag value. The text form is the shortest
// decimal representation that round-trips ('f' format, no exponent).
func FloatValue(f float64) TagValue {
	return TagValue{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// ParseTagValue converts raw user input into a TagValue. Input that is a
// canonical decimal number ("1", "-2.5") becomes a Number; anything else,
// including "007" or "1e3", is kept verbatim as a String.
func ParseTagValue(raw string) TagValue {
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil && FloatValue(f).text == raw {
		return TagValue{kind: KindNumber, text: raw}
	}
	return StringValue(raw)
}

// NewTagValue rebuilds a TagValue from its persisted kind and text form.
func NewTagValue(kind ValueKind, text string) (TagValue, error) {
	switch kind {
	case KindString, "":
		return StringValue(text), nil
	case KindNumber:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return TagValue{}, fmt.Errorf("%w: number %q: %w", ErrInvalidTagValue, text, err)
		}
		return TagValue{kind: KindNumber, text: text}, nil
	default:
		return TagValue{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidTagValue, kind)
	}
}

// Kind reports the scalar kind of the value.
func (v TagValue) Kind() ValueKind {
	if v.kind == "" {
		return KindString
	}
	return v.kind
}

// String returns the text form used on the wire and in storage.
func (v TagValue) String() string {
	return v.text
}

// IsNumber reports whether the value is numeric.
func (v TagValue) IsNumber() bool {
	return v.kind == KindNumber
}

// MarshalJSON encodes strings as JSON strings and numbers as JSON numbers.
func (v TagValue) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON string or a JSON number. Numbers keep their
// literal text; only the constructors canonicalise.
func (v *TagValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrInvalidTagValue
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTagValue, err)
		}
		*v = StringValue(s)
		return nil
	default:
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTagValue, string(b))
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return fmt.Errorf("%w: number %q: %w", ErrInvalidTagValue, n.String(), err)
		}
		// the literal is kept as received so integers beyond float64
		// precision survive and re-encode to identical bytes
		*v = TagValue{kind: KindNumber, text: n.String()}
		return nil
	}
}
