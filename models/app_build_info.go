// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// NotAvailable stands in for build metadata that was not injected.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
// Empty fields are reported as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the three build lines printed by both binaries at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

type buildInfoJSON struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// MarshalJSON encodes the body of GET /api/version/.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(buildInfoJSON{
		BuildVersion: a.buildVersion,
		BuildDate:    a.buildDate,
		BuildCommit:  a.buildCommit,
	})
}

// UnmarshalJSON decodes the body of GET /api/version/.
func (a *AppBuildInfo) UnmarshalJSON(b []byte) error {
	var v buildInfoJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = NewAppBuildInfo(v.BuildVersion, v.BuildDate, v.BuildCommit)
	return nil
}
