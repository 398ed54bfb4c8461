// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

func newTestLedger(t *testing.T, dialect Dialect) (*downloadLedger, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	ledger := NewDownloadLedger(&DB{DB: db, dialect: dialect, logger: l}, l).(*downloadLedger)
	return ledger, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testRecord() models.DownloadRecord {
	return models.DownloadRecord{
		RunID:     "run-1",
		PackageID: "com.example.app",
		Version:   "1.0",
		Archive:   "out/bundled/com.example.app-1.0.zip",
		Files:     2,
		Bytes:     2048,
		Status:    models.DownloadStatusOK,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecord_Insert(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	rec := testRecord()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO downloads (run_id,package_id,version,archive,files,bytes,status,error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs(rec.RunID, rec.PackageID, rec.Version, rec.Archive, rec.Files, rec.Bytes, "ok", "", rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ledger.Record(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_SQLitePlaceholders(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectSQLite)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?,?,?,?,?,?,?,?,?)")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, ledger.Record(context.Background(), testRecord()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_DuplicateUpdates(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	rec := testRecord()
	rec.Status = models.DownloadStatusFailed
	rec.Error = "boom"

	mock.ExpectExec("INSERT INTO downloads").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE downloads SET")).
		WithArgs(rec.Version, rec.Archive, rec.Files, rec.Bytes, "failed", "boom", rec.CreatedAt, rec.PackageID, rec.RunID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ledger.Record(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_InsertError(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	dbErr := errors.New("disk full")
	mock.ExpectExec("INSERT INTO downloads").WillReturnError(dbErr)

	err := ledger.Record(context.Background(), testRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "com.example.app")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_UpdateError(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	updErr := errors.New("locked")
	mock.ExpectExec("INSERT INTO downloads").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectExec("UPDATE downloads").WillReturnError(updErr)

	err := ledger.Record(context.Background(), testRecord())
	assert.ErrorIs(t, err, updErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(downloadColumns).
		AddRow("run-2", "org.b", "2.0", "out/bundled/org.b-2.0.zip", 3, int64(99), "ok", "", at).
		AddRow("run-1", "org.a", "", "", 0, int64(0), "failed", "not found", at.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT run_id, package_id, version, archive, files, bytes, status, error, created_at FROM downloads ORDER BY created_at DESC, package_id ASC LIMIT 10")).
		WillReturnRows(rows)

	records, err := ledger.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "org.b", records[0].PackageID)
	assert.Equal(t, 3, records[0].Files)
	assert.Equal(t, models.DownloadStatusOK, records[0].Status)
	assert.Equal(t, at, records[0].CreatedAt)

	assert.Equal(t, models.DownloadStatusFailed, records[1].Status)
	assert.Equal(t, "not found", records[1].Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoLimit(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectSQLite)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, package_id ASC")).
		WillReturnRows(sqlmock.NewRows(downloadColumns))

	records, err := ledger.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("gone"))

	_, err := ledger.List(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list downloads")
}

func TestList_ScanError(t *testing.T) {
	ledger, mock, db := newTestLedger(t, DialectPostgres)
	defer db.Close()

	rows := sqlmock.NewRows(downloadColumns).
		AddRow("run", "pkg", "1", "", "not-a-number", int64(0), "ok", "", time.Now())
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := ledger.List(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan")
}

func TestLedgerClose(t *testing.T) {
	ledger, mock, _ := newTestLedger(t, DialectSQLite)
	mock.ExpectClose()

	require.NoError(t, ledger.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
