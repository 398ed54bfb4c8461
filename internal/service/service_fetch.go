// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/internal/store"
	"github.com/MKhiriev/go-apk-fetcher/internal/utils"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

type fetchService struct {
	adapter  adapter.StoreAdapter
	storage  store.PackageFileStorage
	ledger   store.DownloadLedger
	reporter Reporter
	ids      utils.IDGenerator
	now      func() time.Time
	logger   *logger.Logger
}

// NewFetchService builds a [FetchService]. ledger may be nil, in which case
// outcomes are not recorded.
func NewFetchService(
	storeAdapter adapter.StoreAdapter,
	storage store.PackageFileStorage,
	ledger store.DownloadLedger,
	reporter Reporter,
	ids utils.IDGenerator,
	log *logger.Logger,
) FetchService {
	return &fetchService{
		adapter:  storeAdapter,
		storage:  storage,
		ledger:   ledger,
		reporter: reporter,
		ids:      ids,
		now:      time.Now,
		logger:   log,
	}
}

func (s *fetchService) FetchAndArchive(ctx context.Context, session models.Session, packageIDs []string, outputRoot string) ([]models.DownloadResult, error) {
	if session.IsZero() {
		return nil, ErrEmptySession
	}

	// stateless re-authentication, once per run
	if err := s.adapter.Resume(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "fetchService.FetchAndArchive").Msg("failed to resume session")
		return nil, fmt.Errorf("%w: %w", ErrResumeSession, err)
	}

	layout := store.NewLayout(outputRoot)
	if err := s.storage.EnsureDir(layout.Root); err != nil {
		return nil, err
	}

	runID := s.ids.Generate()
	log := s.logger.With().Str("run_id", runID).Logger()
	ctx = log.WithContext(ctx)

	results := make([]models.DownloadResult, 0, len(packageIDs))
	for _, raw := range packageIDs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		packageID := trimPackageID(raw)
		if packageID == "" {
			continue
		}

		s.reporter.Started(packageID)
		result, err := s.fetchPackage(ctx, layout, packageID)
		if err != nil {
			if !isPackageFailure(ctx, err) {
				log.Err(err).Str("package_id", packageID).Msg("download run aborted")
				return results, err
			}

			log.Warn().Err(err).Str("package_id", packageID).Msg("package download failed")
			result.Err = err
			s.reporter.Failed(packageID, err)
		}

		results = append(results, result)
		s.record(ctx, runID, result)
	}

	summary := models.Summarize(results)
	log.Info().
		Int("downloaded", summary.Downloaded).
		Int("failed", summary.Failed).
		Msg("download run finished")

	return results, nil
}

// isPackageFailure reports whether err is a store failure that only affects
// the current package. Cancellation surfaces through the HTTP layer as a
// request error too, so the context is checked first.
func isPackageFailure(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, adapter.ErrRequest)
}

func (s *fetchService) fetchPackage(ctx context.Context, layout store.Layout, packageID string) (models.DownloadResult, error) {
	result := models.DownloadResult{PackageID: packageID}

	details, err := s.adapter.Details(ctx, packageID)
	if err != nil {
		return result, err
	}
	result.Version = details.VersionString

	payload, err := s.adapter.Download(ctx, packageID)
	if err != nil {
		return result, err
	}

	docID := payload.DocID
	if docID == "" {
		docID = packageID
	}

	result.Dir = layout.DownloadDir(docID, result.Version)
	if err = s.storage.EnsureDir(result.Dir); err != nil {
		return result, err
	}
	if err = s.storage.EnsureDir(layout.BundledRoot()); err != nil {
		return result, err
	}

	s.reporter.Version(result.Version)
	for i, data := range payload.AdditionalData {
		s.reporter.AdditionalData(i, data)
		logger.FromContext(ctx).Debug().
			Str("package_id", packageID).
			Str("type", data.Type).
			Int64("version_code", data.VersionCode).
			Str("file", data.File.String()).
			Msg("additional data available")
	}

	for i, split := range payload.Splits {
		s.reporter.Split(i, split)

		path := layout.SplitFile(docID, result.Version, split.Name)
		n, err := s.storage.WriteStream(ctx, path, split.File)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, path)
		result.TotalSize += n
		s.reporter.SplitDownloaded(split.Name)
	}

	basePath := layout.BaseFile(docID, result.Version)
	n, err := s.storage.WriteStream(ctx, basePath, payload.File)
	if err != nil {
		return result, err
	}
	result.Files = append(result.Files, basePath)
	result.BaseSize = n
	result.TotalSize += n
	s.reporter.BaseDownloaded()

	archive := layout.ArchiveFile(docID, result.Version)
	if err = s.storage.ArchiveDir(ctx, result.Dir, archive); err != nil {
		return result, err
	}
	result.Archive = archive
	s.reporter.Archived(archive)

	return result, nil
}

// record stores the outcome in the ledger. The ledger is bookkeeping only,
// so a failure is logged and the run goes on.
func (s *fetchService) record(ctx context.Context, runID string, result models.DownloadResult) {
	if s.ledger == nil {
		return
	}

	if err := s.ledger.Record(ctx, models.NewDownloadRecord(runID, result, s.now())); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "fetchService.record").
			Str("package_id", result.PackageID).
			Msg("failed to record download in ledger")
	}
}
