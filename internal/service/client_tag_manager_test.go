// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/mock"
	"github.com/MKhiriev/go-tag-sync/internal/validators"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Scenario A ───────────────────────────────────────────────────────────────

func TestTagManager_SendTags_SendsExactlyStoredValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteTagClient(ctrl)

	m := NewClientTagManager(remote, nil, logger.Nop())
	m.StoreTagValuesToUpdate(map[string]models.TagValue{
		"tag1": models.IntValue(1),
		"tag2": models.IntValue(2),
	})

	remote.EXPECT().
		ApplyDelta(gomock.Any(), models.TagDelta{
			"tag1": models.SetOp(models.IntValue(1)),
			"tag2": models.SetOp(models.IntValue(2)),
		}).
		Return(nil).
		Times(1)

	require.NoError(t, m.SendTags(context.Background()))
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 0, cacheOf(m).Len())
}

// ── Scenario D ───────────────────────────────────────────────────────────────

func TestTagManager_DownloadTags_EmptyRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteTagClient(ctrl)
	journal := mock.NewMockLocalTagRepository(ctrl) // no journal interaction expected

	m := NewClientTagManager(remote, journal, logger.Nop())
	remote.EXPECT().FetchAll(gomock.Any()).Return(map[string]models.TagValue{}, nil)

	tags, err := m.DownloadTags(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
	assert.Equal(t, 0, m.Pending())
}

func TestTagManager_GetTags_DoesNotIncludePendingChanges(t *testing.T) {
	remote := newFakeRemote()
	remote.remote["confirmed"] = models.StringValue("yes")
	m := newTestManager(remote)

	m.StoreTagValuesToUpdate(map[string]models.TagValue{"pending": models.IntValue(1)})
	tags, err := m.GetTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]models.TagValue{"confirmed": models.StringValue("yes")}, tags)
	assert.Equal(t, 1, m.Pending())
	assert.Empty(t, remote.Calls())
}

func TestTagManager_DownloadTags_PropagatesError(t *testing.T) {
	remote := newFakeRemote()
	remote.fetchErr = adapter.ErrUnauthorized
	m := newTestManager(remote)

	tags, err := m.DownloadTags(context.Background())

	assert.Nil(t, tags)
	assert.ErrorIs(t, err, adapter.ErrServerRejected)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestTagManager_EmptyKeysAreIgnored(t *testing.T) {
	remote := newFakeRemote()
	m := newTestManager(remote)

	m.StoreTagValuesToUpdate(map[string]models.TagValue{"": models.IntValue(1), "  ": models.IntValue(2), "ok": models.IntValue(3)})
	m.StoreTagValuesToDelete([]string{"", "gone"})

	assert.Equal(t, models.TagDelta{
		"ok":   models.SetOp(models.IntValue(3)),
		"gone": models.DeleteOp(),
	}, cacheOf(m).Outstanding())
}

func TestTagManager_ChangesTheDirectoryWouldRejectAreDropped(t *testing.T) {
	remote := newFakeRemote()
	m := newTestManager(remote)
	longKey := strings.Repeat("k", validators.MaxTagKeyLength+1)
	longValue := models.StringValue(strings.Repeat("v", validators.MaxTagValueLength+1))

	m.StoreTagValuesToUpdate(map[string]models.TagValue{
		longKey: models.IntValue(1),
		"big":   longValue,
		"ok":    models.IntValue(2),
	})
	m.StoreTagValuesToDelete([]string{longKey, "gone"})

	require.NoError(t, m.SyncTags(context.Background()))

	calls := remote.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.TagDelta{
		"ok":   models.SetOp(models.IntValue(2)),
		"gone": models.DeleteOp(),
	}, calls[0])
	assert.Equal(t, map[string]models.TagValue{"ok": models.IntValue(2)}, remote.Confirmed())
	assert.Equal(t, 0, m.Pending())
}

func TestTagManager_LimitsAreInclusive(t *testing.T) {
	m := newTestManager(newFakeRemote())
	key := strings.Repeat("k", validators.MaxTagKeyLength)
	value := models.StringValue(strings.Repeat("é", validators.MaxTagValueLength))

	m.StoreTagValuesToUpdate(map[string]models.TagValue{key: value})

	assert.Equal(t, models.TagDelta{key: models.SetOp(value)}, cacheOf(m).Outstanding())
}

func TestTagManager_NoOpMutationsDoNotTouchJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalTagRepository(ctrl)

	m := NewClientTagManager(newFakeRemote(), journal, logger.Nop())
	m.StoreTagValuesToUpdate(nil)
	m.StoreTagValuesToDelete(nil)
}

func TestTagManager_ConsentTags(t *testing.T) {
	remote := newFakeRemote()
	remote.confirmed["news"] = models.StringValue("1")
	m := newTestManager(remote)

	var sent []TagEvent
	m.Subscribe(EventTagsSent, func(e TagEvent) { sent = append(sent, e) })

	err := m.ConsentTags(context.Background(), []string{"sports", "music"}, []string{"news"})

	require.NoError(t, err)
	require.Len(t, sent, 1, "consent completion triggers exactly one sync")
	assert.Equal(t, models.TagDelta{
		"sports": models.SetOp(models.StringValue("1")),
		"music":  models.SetOp(models.StringValue("1")),
		"news":   models.DeleteOp(),
	}, sent[0].Delta)
	assert.Equal(t, map[string]models.TagValue{
		"sports": models.StringValue("1"),
		"music":  models.StringValue("1"),
	}, remote.Confirmed())
}

// ── journal ──────────────────────────────────────────────────────────────────

func TestTagManager_JournalFollowsEveryChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteTagClient(ctrl)
	journal := mock.NewMockLocalTagRepository(ctrl)

	m := NewClientTagManager(remote, journal, logger.Nop())
	tag1 := models.TagDelta{"tag1": models.SetOp(models.IntValue(1))}

	gomock.InOrder(
		journal.EXPECT().ReplacePending(gomock.Any(), tag1).Return(nil),
		remote.EXPECT().ApplyDelta(gomock.Any(), tag1).Return(nil),
		journal.EXPECT().ReplacePending(gomock.Any(), models.TagDelta{}).Return(nil),
	)

	m.StoreTagValuesToUpdate(map[string]models.TagValue{"tag1": models.IntValue(1)})
	require.NoError(t, m.SyncTags(context.Background()))
}

func TestTagManager_JournalKeepsDeltaAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteTagClient(ctrl)
	journal := mock.NewMockLocalTagRepository(ctrl)

	m := NewClientTagManager(remote, journal, logger.Nop())
	pending := models.TagDelta{"gone": models.DeleteOp()}

	gomock.InOrder(
		journal.EXPECT().ReplacePending(gomock.Any(), pending).Return(nil),
		remote.EXPECT().ApplyDelta(gomock.Any(), pending).Return(adapter.ErrNetwork),
		journal.EXPECT().ReplacePending(gomock.Any(), pending).Return(nil),
	)

	m.StoreTagValuesToDelete([]string{"gone"})
	require.ErrorIs(t, m.SendTags(context.Background()), adapter.ErrNetwork)
}

func TestTagManager_JournalWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalTagRepository(ctrl)
	remote := newFakeRemote()

	m := NewClientTagManager(remote, journal, logger.Nop())
	journal.EXPECT().ReplacePending(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()

	m.StoreTagValuesToUpdate(map[string]models.TagValue{"tag1": models.IntValue(1)})
	require.NoError(t, m.SyncTags(context.Background()))
	assert.Equal(t, map[string]models.TagValue{"tag1": models.IntValue(1)}, remote.Confirmed())
}

func TestTagManager_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalTagRepository(ctrl)
	remote := newFakeRemote()

	m := NewClientTagManager(remote, journal, logger.Nop())
	saved := models.TagDelta{
		"tag1": models.SetOp(models.FloatValue(1.5)),
		"old":  models.DeleteOp(),
	}
	journal.EXPECT().LoadPending(gomock.Any()).Return(saved, nil)
	journal.EXPECT().ReplacePending(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, 2, m.Pending())

	require.NoError(t, m.SyncTags(context.Background()))
	calls := remote.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, saved, calls[0])
}

func TestTagManager_Load_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalTagRepository(ctrl)

	m := NewClientTagManager(newFakeRemote(), journal, logger.Nop())
	journal.EXPECT().LoadPending(gomock.Any()).Return(nil, errors.New("corrupted"))

	err := m.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted")
	assert.Equal(t, 0, m.Pending())
}

func TestTagManager_Load_WithoutJournal(t *testing.T) {
	m := newTestManager(newFakeRemote())
	assert.NoError(t, m.Load(context.Background()))
}

func TestTagManager_Close_DetachesJournalFromEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockLocalTagRepository(ctrl)
	remote := newFakeRemote()

	m := NewClientTagManager(remote, journal, logger.Nop())
	a := models.TagDelta{"a": models.SetOp(models.IntValue(1))}
	ab := models.TagDelta{"a": models.SetOp(models.IntValue(1)), "b": models.SetOp(models.IntValue(2))}

	gomock.InOrder(
		journal.EXPECT().ReplacePending(gomock.Any(), a).Return(nil).Times(2),
		journal.EXPECT().ReplacePending(gomock.Any(), ab).Return(nil),
	)

	m.StoreTagValuesToUpdate(map[string]models.TagValue{"a": models.IntValue(1)})
	m.Close()
	m.StoreTagValuesToUpdate(map[string]models.TagValue{"b": models.IntValue(2)})

	// a successful sync no longer rewrites the journal
	require.NoError(t, m.SyncTags(context.Background()))
	assert.Len(t, remote.Confirmed(), 2)
}

// ── independent sessions ─────────────────────────────────────────────────────

func TestTagManager_InstancesAreIndependent(t *testing.T) {
	remoteA, remoteB := newFakeRemote(), newFakeRemote()
	a, b := newTestManager(remoteA), newTestManager(remoteB)

	a.StoreTagValuesToUpdate(map[string]models.TagValue{"only_a": models.IntValue(1)})
	require.NoError(t, b.SyncTags(context.Background()))

	assert.Empty(t, remoteB.Calls())
	assert.Equal(t, 1, a.Pending())
}
