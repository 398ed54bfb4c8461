// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// mapHTTPError converts a non-2xx status into a sentinel-wrapped error.
// body is included in the message when present.
func mapHTTPError(status int, body string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrRequest, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("%w: http %d: %s", ErrRequest, status, body)
	}
}
