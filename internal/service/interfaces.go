// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the fetcher's use cases: bootstrapping a store
// session and downloading packages into per-package zip archives.
package service

import (
	"context"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService performs the first-time store login.
type SessionService interface {
	// Login exchanges account credentials for a reusable session. There are
	// no retries; an authentication failure wraps adapter.ErrUnauthorized.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
}

// FetchService downloads packages and bundles each into a zip archive.
type FetchService interface {
	// FetchAndArchive resumes session and processes packageIDs sequentially
	// in input order, returning one result per non-blank identifier.
	//
	// Store failures (adapter.ErrRequest) fail only the package they occur
	// in and are reported through the result's Err. Resuming the session,
	// local filesystem failures and context cancellation abort the run; the
	// results collected so far are returned alongside the error.
	FetchAndArchive(ctx context.Context, session models.Session, packageIDs []string, outputRoot string) ([]models.DownloadResult, error)
}

// Reporter receives human-readable progress events for a download run.
type Reporter interface {
	Started(packageID string)
	Version(version string)
	AdditionalData(index int, data models.AdditionalData)
	Split(index int, split models.Split)
	SplitDownloaded(name string)
	BaseDownloaded()
	Archived(path string)
	Failed(packageID string, err error)
	Summary(summary models.DownloadSummary)
}
