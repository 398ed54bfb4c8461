// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStoreConfigs indicates a missing store URL or a non-positive
	// request timeout.
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidSessionConfigs indicates that gsfid or authsubtoken is
	// missing for a command that resumes a session.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration: gsfid and authsubtoken are required")
	// ErrInvalidLedgerConfigs indicates that no ledger DSN is configured for
	// a command that reads the ledger.
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration: ledger dsn is required")
)
