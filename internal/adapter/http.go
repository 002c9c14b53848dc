// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/go-resty/resty/v2"
)

// MaxChangesPerRequest bounds one PATCH body. At the directory's key and
// value limits, fully escaped, that many changes stay under its 1 MiB cap.
const MaxChangesPerRequest = 256

const (
	pathTags        = "/api/tags/"
	pathSubscribers = "/api/subscribers/"
	pathVersion     = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the resty-backed [ServerAdapter] for the
// directory at adapterCfg.BaseURL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.BaseURL) == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClientWithBase(adapterCfg.BaseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: log,
	}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register creates a subscriber via POST /api/subscribers/. The token comes
// back in the Authorization header and is stored for later calls.
func (h *httpServerAdapter) Register(ctx context.Context) (models.Session, error) {
	var body models.SubscriberResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Post(pathSubscribers)
	if err != nil {
		return models.Session{}, transportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: register parse bearer token: %w", ErrInvalidResponse, err)
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil || body.SubscriberID == "" {
		// the token subject is authoritative when the body is unusable
		body.SubscriberID, err = utils.ParseSubscriberIDFromJWT(token)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: register parse subscriber id: %w", ErrInvalidResponse, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "httpServerAdapter.Register").
		Str("subscriber_id", body.SubscriberID).
		Msg("subscriber registered")

	return models.Session{
		SubscriberID: body.SubscriberID,
		Token:        token,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ApplyDelta sends delta as PATCH /api/tags/, at most MaxChangesPerRequest
// changes per request. An empty delta issues no request. On error the batches
// sent before it stay applied; resending the whole delta is safe because
// every change is idempotent.
func (h *httpServerAdapter) ApplyDelta(ctx context.Context, delta models.TagDelta) error {
	if delta.IsEmpty() {
		return nil
	}

	for _, part := range delta.Chunk(MaxChangesPerRequest) {
		if err := h.applyBatch(ctx, part); err != nil {
			return err
		}
	}
	return nil
}

func (h *httpServerAdapter) applyBatch(ctx context.Context, delta models.TagDelta) error {
	req := models.NewApplyTagsRequest(delta)
	hash, err := h.hasher.SumJSON(req.Payload())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	}
	req.Hash = hash

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch(pathTags)
	if err != nil {
		return transportError("apply tags request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.ApplyDelta").
		Int("length", req.Length).
		Msg("tag delta applied")
	return nil
}

// FetchAll reads GET /api/tags/.
func (h *httpServerAdapter) FetchAll(ctx context.Context) (map[string]models.TagValue, error) {
	resp, err := h.authedRequest(ctx).Get(pathTags)
	if err != nil {
		return nil, transportError("get tags request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tr models.TagsResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return nil, fmt.Errorf("%w: decode tags response: %w", ErrInvalidResponse, err)
	}
	if tr.Tags == nil {
		tr.Tags = map[string]models.TagValue{}
	}
	if tr.Length != len(tr.Tags) {
		return nil, fmt.Errorf("%w: tags length %d, got %d", ErrInvalidResponse, tr.Length, len(tr.Tags))
	}

	return tr.Tags, nil
}

// Version reads GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().SetContext(ctx).Get(pathVersion)
	if err != nil {
		return info, transportError("version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return info, err
	}
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return info, fmt.Errorf("%w: decode version response: %w", ErrInvalidResponse, err)
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
