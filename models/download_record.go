// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DownloadStatus is the persisted outcome of a package download.
type DownloadStatus string

const (
	DownloadStatusOK     DownloadStatus = "ok"
	DownloadStatusFailed DownloadStatus = "failed"
)

// DownloadRecord is one row of the download ledger.
type DownloadRecord struct {
	RunID     string
	PackageID string
	Version   string
	Archive   string
	Files     int
	Bytes     int64
	Status    DownloadStatus
	Error     string
	CreatedAt time.Time
}

// NewDownloadRecord converts a [DownloadResult] into a ledger row for runID.
func NewDownloadRecord(runID string, r DownloadResult, at time.Time) DownloadRecord {
	rec := DownloadRecord{
		RunID:     runID,
		PackageID: r.PackageID,
		Version:   r.Version,
		Archive:   r.Archive,
		Files:     len(r.Files),
		Bytes:     r.TotalSize,
		Status:    DownloadStatusOK,
		CreatedAt: at,
	}
	if r.Err != nil {
		rec.Status = DownloadStatusFailed
		rec.Error = r.Err.Error()
	}
	return rec
}
