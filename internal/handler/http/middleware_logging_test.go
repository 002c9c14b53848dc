// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		body       string
		wantFields []string
	}{
		{
			name:       "GET 200",
			method:     http.MethodGet,
			status:     http.StatusOK,
			body:       "OK",
			wantFields: []string{`"method":"GET"`, `"uri":"/api/tags/"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:       "PATCH 204",
			method:     http.MethodPatch,
			status:     http.StatusNoContent,
			wantFields: []string{`"method":"PATCH"`, `"status":204`, `"size":0`},
		},
		{
			name:       "error 400",
			method:     http.MethodPatch,
			status:     http.StatusBadRequest,
			body:       "bad",
			wantFields: []string{`"status":400`, `"size":3`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, "/api/tags/", nil)
			l := zerolog.New(&buf)
			req = req.WithContext(l.WithContext(req.Context()))

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, field := range tt.wantFields {
				assert.Contains(t, buf.String(), field)
			}
		})
	}
}

func TestWithLogging_NoLoggerInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
