// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRequest is wrapped by every error the adapter returns.
	ErrRequest = errors.New("store request failed")

	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoSession is returned when a package is requested before Login or
	// Resume succeeded.
	ErrNoSession = errors.New("no session established")

	// ErrMalformedResponse is returned when a response decodes but lacks a
	// required field.
	ErrMalformedResponse = errors.New("malformed store response")
)

// requestError prefixes err with op and makes sure it wraps [ErrRequest].
func requestError(op string, err error) error {
	if errors.Is(err, ErrRequest) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRequest, err)
}
