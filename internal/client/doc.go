// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tag client runtime.
//
// [App] restores the local session and the journaled pending changes, then
// runs one CLI verb against the tag manager: queue changes, send or sync
// them, read the directory's tag set, or stay up as a daemon that syncs on
// a timer.
package client
