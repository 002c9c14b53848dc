// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
)

// ClientServices is one client session's service graph. Each call to
// NewClientServices builds an independent TagManager; nothing is shared
// through package state.
type ClientServices struct {
	SessionService ClientSessionService
	TagManager     ClientTagManager
	SyncJob        ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	tagManager := NewClientTagManager(serverAdapter, localStore.TagRepository, log.WithComponent("tag_manager"))

	return &ClientServices{
		SessionService: NewClientSessionService(localStore.TagRepository, serverAdapter, log),
		TagManager:     tagManager,
		SyncJob:        NewClientSyncJob(tagManager, log.WithComponent("sync_job")),
	}
}
