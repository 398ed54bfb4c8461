// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
)

// DefaultChunkSize is the chunk size used by [FileStream.Chunks] when a
// non-positive size is requested.
const DefaultChunkSize = 32 * 1024

// ErrStreamNotAvailable is returned when a [FileStream] has no opener.
var ErrStreamNotAvailable = errors.New("stream is not available")

// OpenFunc opens the underlying byte source of a [FileStream].
type OpenFunc func(ctx context.Context) (io.ReadCloser, error)

// FileStream is a lazily opened binary payload. Nothing is read until
// [FileStream.Chunks] is iterated, and the payload is consumed chunk by chunk
// so it never has to fit in memory.
type FileStream struct {
	// Location is a human-readable description of where the bytes come from
	// (usually a download URL). It is used for logging only.
	Location string

	// Size is the advertised size in bytes, or 0 when unknown.
	Size int64

	open OpenFunc
}

// NewFileStream returns a [FileStream] backed by open.
func NewFileStream(location string, size int64, open OpenFunc) FileStream {
	return FileStream{Location: location, Size: size, open: open}
}

// String implements fmt.Stringer.
func (f FileStream) String() string {
	if f.Size > 0 {
		return fmt.Sprintf("%s (%d bytes)", f.Location, f.Size)
	}
	return f.Location
}

// Open opens the stream. The caller must close the returned reader.
func (f FileStream) Open(ctx context.Context) (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrStreamNotAvailable
	}
	return f.open(ctx)
}

// Chunks returns an iterator over the stream contents in chunks of at most
// size bytes. The yielded slice is reused between iterations and must not be
// retained. An error is yielded at most once, after which iteration stops.
func (f FileStream) Chunks(ctx context.Context, size int) iter.Seq2[[]byte, error] {
	if size <= 0 {
		size = DefaultChunkSize
	}

	return func(yield func([]byte, error) bool) {
		rc, err := f.Open(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rc.Close()

		buf := make([]byte, size)
		for {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			n, err := rc.Read(buf)
			if n > 0 {
				if !yield(buf[:n], nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}
