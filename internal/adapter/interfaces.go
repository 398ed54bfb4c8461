// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to the
// app store.
//
// The primary abstraction is [StoreAdapter], which decouples the services
// from the store protocol. The package ships a REST implementation
// ([NewHTTPStoreAdapter]) that talks to a store gateway; the store's own
// authentication and wire protocol stay behind that gateway.
//
// Every failure returned by an adapter wraps [ErrRequest], so callers can
// separate store failures from local ones with [errors.Is]. Status-specific
// sentinels ([ErrUnauthorized], [ErrNotFound], ...) are wrapped alongside it.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_adapter_mock.go -package=mock

// StoreAdapter defines transport-agnostic communication with the app store.
// An adapter holds at most one session at a time; it is established by
// Login or Resume and attached to every later request.
type StoreAdapter interface {
	// Login performs the interactive authentication handshake with account
	// credentials and returns the issued session. The session is also kept
	// by the adapter for subsequent requests.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Resume re-establishes a previously issued session. It fails with
	// [ErrUnauthorized] when the store rejects the pair.
	Resume(ctx context.Context, session models.Session) error

	// Session returns the session currently held by the adapter.
	Session() models.Session

	// Details fetches package metadata, most importantly the human-readable
	// version string.
	Details(ctx context.Context, packageID string) (models.PackageMetadata, error)

	// Download resolves the delivery of a package. The returned streams are
	// opened lazily when consumed.
	Download(ctx context.Context, packageID string) (models.PackagePayload, error)
}
