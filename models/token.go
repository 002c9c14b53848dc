// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a subscriber JWT with convenience accessors.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// so it can be passed directly to [jwt.ParseWithClaims]. The "sub" claim
// carries the subscriber ID.
type Token struct {
	// Token is the underlying JWT token. Only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// SubscriberID is the parsed "sub" claim.
	SubscriberID string `json:"-"`
}

// GetSubscriberID returns the subscriber ID stored in the "sub" claim.
func (t *Token) GetSubscriberID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subscriber ID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
