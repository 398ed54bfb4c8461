// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

const downloadsTable = "downloads"

var downloadColumns = []string{
	"run_id",
	"package_id",
	"version",
	"archive",
	"files",
	"bytes",
	"status",
	"error",
	"created_at",
}

// downloadLedger is the SQL implementation of [DownloadLedger] shared by
// the PostgreSQL and SQLite backends.
type downloadLedger struct {
	db     *DB
	logger *logger.Logger
}

// NewDownloadLedger constructs a [DownloadLedger] on an open, migrated
// database.
func NewDownloadLedger(db *DB, logger *logger.Logger) DownloadLedger {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating download ledger")
	return &downloadLedger{
		db:     db,
		logger: logger,
	}
}

// Record implements [DownloadLedger]. A second record for the same run and
// package updates the existing row.
func (l *downloadLedger) Record(ctx context.Context, rec models.DownloadRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := l.buildInsertQuery(rec)
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	_, err = l.db.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		log.Err(err).
			Str("func", "downloadLedger.Record").
			Str("package_id", rec.PackageID).
			Msg("failed to insert download record")
		return fmt.Errorf("failed to record download of %s: %w", rec.PackageID, err)
	}

	query, args, err = l.buildUpdateQuery(rec)
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}
	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "downloadLedger.Record").
			Str("package_id", rec.PackageID).
			Msg("failed to update download record")
		return fmt.Errorf("failed to record download of %s: %w", rec.PackageID, err)
	}

	return nil
}

// List implements [DownloadLedger].
func (l *downloadLedger) List(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.buildListQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "downloadLedger.List").Msg("failed to query download records")
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	defer rows.Close()

	var records []models.DownloadRecord
	for rows.Next() {
		var (
			rec    models.DownloadRecord
			status string
		)
		if err = rows.Scan(
			&rec.RunID,
			&rec.PackageID,
			&rec.Version,
			&rec.Archive,
			&rec.Files,
			&rec.Bytes,
			&status,
			&rec.Error,
			&rec.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "downloadLedger.List").Msg("scanning error")
			return nil, fmt.Errorf("failed to scan download record: %w", err)
		}
		rec.Status = models.DownloadStatus(status)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate download records: %w", err)
	}

	return records, nil
}

// Close implements [DownloadLedger].
func (l *downloadLedger) Close() error {
	return l.db.Close()
}

func (l *downloadLedger) buildInsertQuery(rec models.DownloadRecord) (string, []any, error) {
	return l.db.statements().
		Insert(downloadsTable).
		Columns(downloadColumns...).
		Values(
			rec.RunID,
			rec.PackageID,
			rec.Version,
			rec.Archive,
			rec.Files,
			rec.Bytes,
			string(rec.Status),
			rec.Error,
			rec.CreatedAt.UTC(),
		).
		ToSql()
}

func (l *downloadLedger) buildUpdateQuery(rec models.DownloadRecord) (string, []any, error) {
	return l.db.statements().
		Update(downloadsTable).
		Set("version", rec.Version).
		Set("archive", rec.Archive).
		Set("files", rec.Files).
		Set("bytes", rec.Bytes).
		Set("status", string(rec.Status)).
		Set("error", rec.Error).
		Set("created_at", rec.CreatedAt.UTC()).
		Where(sq.Eq{"run_id": rec.RunID, "package_id": rec.PackageID}).
		ToSql()
}

func (l *downloadLedger) buildListQuery(limit int) (string, []any, error) {
	q := l.db.statements().
		Select(downloadColumns...).
		From(downloadsTable).
		OrderBy("created_at DESC", "package_id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}
