// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/migrations"
)

// Dialect identifies the SQL backend behind a ledger DSN.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// statements returns a squirrel builder using the placeholder style of the
// connected backend.
func (db *DB) statements() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// DialectFromDSN picks the backend for dsn. postgres:// and postgresql://
// URLs select PostgreSQL, anything else is treated as a SQLite file path.
func DialectFromDSN(dsn string) (Dialect, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	case strings.Contains(dsn, "://") && !strings.HasPrefix(dsn, "file:"):
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)
	default:
		return DialectSQLite, nil
	}
}

// NewLedger connects to the database named by dsn, applies migrations and
// returns a [DownloadLedger] on top of it.
func NewLedger(ctx context.Context, dsn string, log *logger.Logger) (DownloadLedger, error) {
	dialect, err := DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewLedger").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewDownloadLedger(db, log), nil
}
