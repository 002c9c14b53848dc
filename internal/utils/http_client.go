// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with a default resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientWithBase returns a client bound to baseURL. A positive timeout
// is applied to every request; retries are left disabled.
func NewHTTPClientWithBase(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
