// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

func stream(location string) models.FileStream {
	return models.NewFileStream(location, 0, func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("")), nil
	})
}

func TestReporter_ProgressLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Started("com.example.app")
	r.Version("1.0")
	r.AdditionalData(0, models.AdditionalData{Type: "main", VersionCode: 12, File: stream("https://cdn/obb")})
	r.Split(0, models.Split{Name: "config.arm64_v8a", File: stream("https://cdn/split")})
	r.SplitDownloaded("config.arm64_v8a")
	r.BaseDownloaded()
	r.Archived("out/bundled/com.example.app-1.0.zip")

	want := strings.Join([]string{
		"Downloading com.example.app",
		"    -> Version: 1.0",
		"    Additional data: 0",
		"        -> Type:    main",
		"        -> Version: 12",
		"        -> File:    https://cdn/obb",
		"    Splits: 0",
		"        -> Name:    config.arm64_v8a",
		"        -> File:    https://cdn/split",
		"Download of split config.arm64_v8a finished",
		"Download of base apk finished",
		"Made archive at out/bundled/com.example.app-1.0.zip",
	}, "\n") + "\n"

	assert.Equal(t, want, buf.String())
}

func TestReporter_Failed(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Failed("org.missing", errors.New("details: store request failed: not found"))

	assert.Equal(t, "Failed to download org.missing\ndetails: store request failed: not found\n", buf.String())
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Summary(models.DownloadSummary{Downloaded: 2, Failed: 1})

	assert.Equal(t, "2 downloaded, 1 failed\n", buf.String())
}

func TestReporter_Session(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Session(models.Session{GsfID: 4012345678901234567, AuthSubToken: "tok"})

	assert.Equal(t, "gsfId: 4012345678901234567\nauthSubToken: tok\n", buf.String())
}

func TestReporter_History(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	NewReporter(&buf).History([]models.DownloadRecord{
		{PackageID: "org.a", Version: "1.0", Status: models.DownloadStatusOK, Files: 2, Bytes: 42, Archive: "out/bundled/org.a-1.0.zip", CreatedAt: at},
		{PackageID: "org.b", Status: models.DownloadStatusFailed, Error: "not found", CreatedAt: at},
	})

	out := buf.String()
	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "org.a")
	assert.Contains(t, out, "out/bundled/org.a-1.0.zip")
	assert.Contains(t, out, "not found")
	assert.NotContains(t, out, "\x1b[")
}

func TestReporter_HistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).History(nil)

	assert.Equal(t, "no downloads recorded\n", buf.String())
}

func TestReporter_BuildInfo(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).BuildInfo(models.NewAppBuildInfo("v1.2.3", "", "abc123"))

	assert.Equal(t, "apkfetch v1.2.3 (commit: abc123, built: N/A)\n", buf.String())
}

func TestHumanizeStoreError(t *testing.T) {
	assert.Equal(t, "", humanizeStoreError(nil))
	assert.Equal(t, "boom", humanizeStoreError(errors.New("boom")))
	assert.Equal(t,
		"store is unreachable: dial tcp 127.0.0.1:8080: connection refused",
		humanizeStoreError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
}
