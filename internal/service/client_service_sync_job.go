// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
)

// DefaultSyncJobInterval is used when Start receives a non-positive interval.
const DefaultSyncJobInterval = 5 * time.Minute

type clientSyncJob struct {
	trigger SyncTrigger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls trigger.SyncTags on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(trigger SyncTrigger, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{trigger: trigger, logger: log}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls SyncTags every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncJobInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := j.trigger.SyncTags(jobCtx)
				if err != nil && !errors.Is(err, context.Canceled) {
					j.logger.Err(err).Str("func", "clientSyncJob.Start").Msg("periodic tag sync failed")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
