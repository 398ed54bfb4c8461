// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrWriteFile is wrapped by local filesystem failures in
	// [PackageFileStorage.WriteStream].
	ErrWriteFile = errors.New("write file")

	// ErrArchive is wrapped by failures while building a zip archive.
	ErrArchive = errors.New("archive directory")

	// ErrUnsupportedDSN is returned when a ledger DSN names an unknown
	// database.
	ErrUnsupportedDSN = errors.New("unsupported ledger dsn")
)
