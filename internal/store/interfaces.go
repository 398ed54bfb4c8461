// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns everything the fetcher persists: the on-disk package
// layout (download directories, APK files, zip archives) and the optional
// SQL download ledger.
package store

import (
	"context"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PackageFileStorage writes package files and archives to the local
// filesystem.
type PackageFileStorage interface {
	// EnsureDir creates path and any missing parents. Existing directories
	// are reused.
	EnsureDir(path string) error

	// WriteStream consumes stream chunk by chunk into the file at path,
	// truncating any previous content, and returns the number of bytes
	// written. Errors produced while reading the stream are returned as-is
	// (wrapped with context); local write failures wrap [ErrWriteFile].
	WriteStream(ctx context.Context, path string, stream models.FileStream) (int64, error)

	// ArchiveDir compresses every file below srcDir into the zip file dst.
	// Entry names are relative to srcDir.
	ArchiveDir(ctx context.Context, srcDir, dst string) error
}

// DownloadLedger records the outcome of every processed package.
type DownloadLedger interface {
	// Record stores rec. Recording the same package twice within one run
	// replaces the earlier row.
	Record(ctx context.Context, rec models.DownloadRecord) error

	// List returns the most recent records, newest first. A non-positive
	// limit returns every record.
	List(ctx context.Context, limit int) ([]models.DownloadRecord, error)

	// Close releases the underlying database connection.
	Close() error
}
