// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// packageFileStorage is the filesystem implementation of
// [PackageFileStorage].
type packageFileStorage struct {
	chunkSize int
	logger    *logger.Logger
}

// NewPackageFileStorage constructs a [PackageFileStorage] that consumes
// streams in chunks of chunkSize bytes (the default when non-positive).
func NewPackageFileStorage(chunkSize int, logger *logger.Logger) PackageFileStorage {
	if chunkSize <= 0 {
		chunkSize = models.DefaultChunkSize
	}
	return &packageFileStorage{chunkSize: chunkSize, logger: logger}
}

// EnsureDir implements [PackageFileStorage].
func (p *packageFileStorage) EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrWriteFile, path, err)
	}
	return nil
}

// WriteStream implements [PackageFileStorage].
func (p *packageFileStorage) WriteStream(ctx context.Context, path string, stream models.FileStream) (written int64, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %w", ErrWriteFile, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWriteFile, path, closeErr)
		}
	}()

	for chunk, readErr := range stream.Chunks(ctx, p.chunkSize) {
		if readErr != nil {
			return written, fmt.Errorf("read %s: %w", stream.Location, readErr)
		}

		n, writeErr := f.Write(chunk)
		written += int64(n)
		if writeErr != nil {
			return written, fmt.Errorf("%w: %s: %w", ErrWriteFile, path, writeErr)
		}
	}

	p.logger.Debug().
		Str("func", "packageFileStorage.WriteStream").
		Str("path", path).
		Int64("bytes", written).
		Msg("stream written")

	return written, nil
}
