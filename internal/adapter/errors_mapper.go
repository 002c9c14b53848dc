// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tag-sync/internal/app"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into an error wrapping
// ErrNetwork or ErrServerRejected. It returns nil for 2xx.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusBadRequest && body == app.MsgTagsHashMismatch:
		return ErrHashMismatch
	case code == http.StatusRequestTimeout,
		code == http.StatusTooManyRequests,
		code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrNetwork, code, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServerRejected, code, body)
	}
}

// transportError wraps a resty transport failure.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetwork, op, err)
}
