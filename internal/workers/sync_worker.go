// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/service"
)

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker runs job every interval while the worker runs.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration, log *logger.Logger) Worker {
	return &syncWorker{job: job, interval: interval, logger: log}
}

func (s *syncWorker) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("periodic tag sync started")
	s.job.Start(ctx, s.interval)

	<-ctx.Done()

	s.job.Stop()
	s.logger.Info().Msg("periodic tag sync stopped")
	return nil
}
