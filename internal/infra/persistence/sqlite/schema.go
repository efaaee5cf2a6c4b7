package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"safewallet/internal/errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SnapshotVersion is written next to every snapshot row so older rows can be migrated or skipped.
const SnapshotVersion = 1

const timeLayout = time.RFC3339Nano

type migration struct {
	version int
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS snapshot_meta (
				name TEXT PRIMARY KEY,
				saved_at TEXT NOT NULL
			);`,
			`CREATE TABLE IF NOT EXISTS wallet_items (
				position INTEGER NOT NULL,
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL,
				name TEXT NOT NULL,
				issuer TEXT NOT NULL DEFAULT '',
				number TEXT NOT NULL DEFAULT '',
				issue_date TEXT NOT NULL DEFAULT '',
				expiry_date TEXT NOT NULL DEFAULT '',
				support_phone TEXT NOT NULL DEFAULT '',
				contact_phone TEXT NOT NULL DEFAULT '',
				schema_version INTEGER NOT NULL
			);`,
			`CREATE INDEX IF NOT EXISTS idx_wallet_items_position ON wallet_items(position);`,
			`CREATE TABLE IF NOT EXISTS wallet_status (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				is_connected INTEGER NOT NULL,
				battery_level INTEGER NOT NULL,
				is_lost INTEGER NOT NULL,
				last_seen TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				distance REAL NOT NULL,
				temperature TEXT NOT NULL,
				schema_version INTEGER NOT NULL
			);`,
			`CREATE TABLE IF NOT EXISTS push_devices (
				id TEXT PRIMARY KEY,
				fcm_token TEXT NOT NULL,
				device_id TEXT NOT NULL UNIQUE,
				platform TEXT NOT NULL DEFAULT '',
				is_active INTEGER NOT NULL DEFAULT 1,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);`,
			`CREATE INDEX IF NOT EXISTS idx_push_devices_token ON push_devices(fcm_token);`,
		},
	},
}

// Migrate applies every migration newer than the recorded schema version.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	);`); err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		return errors.Wrap(err, "read schema version")
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		if err := applyMigration(ctx, db, m); err != nil {
			return errors.Wrapf(err, "apply migration %d", m.version)
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?);`,
		m.version, formatTime(time.Now()),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, _ = time.Parse("2006-01-02T15:04:05Z07:00", s)
	}

	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func isUniqueConstraintViolation(err error) bool {
	if sqliteErr, ok := errors.AsType[*sqlite.Error](err); ok {
		code := sqliteErr.Code()

		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
