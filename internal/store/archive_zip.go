// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// ArchiveDir implements [PackageFileStorage]. Files are streamed into the
// archive, so archiving never needs a whole APK in memory. On failure the
// partially written archive is removed.
func (p *packageFileStorage) ArchiveDir(ctx context.Context, srcDir, dst string) (err error) {
	zipFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrArchive, dst, err)
	}
	defer func() {
		if closeErr := zipFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrArchive, dst, closeErr)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	zipWriter := zip.NewWriter(zipFile)
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(srcDir, path)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}
		if relPath == "." {
			return nil
		}
		zipPath := filepath.ToSlash(relPath)

		if d.IsDir() {
			_, createErr := zipWriter.Create(zipPath + "/")
			return createErr
		}

		return addZipEntry(zipWriter, path, zipPath, d)
	})
	if walkErr != nil {
		_ = zipWriter.Close()
		return fmt.Errorf("%w: %s: %w", ErrArchive, srcDir, walkErr)
	}

	if err = zipWriter.Close(); err != nil {
		return fmt.Errorf("%w: finalize %s: %w", ErrArchive, dst, err)
	}

	p.logger.Debug().
		Str("func", "packageFileStorage.ArchiveDir").
		Str("src", srcDir).
		Str("dst", dst).
		Msg("archive created")

	return nil
}

func addZipEntry(zw *zip.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to create file header: %w", err)
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create zip entry: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	if _, err = io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
