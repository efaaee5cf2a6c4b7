// Package sqlite contains the concrete implementation of the persistence layer using SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/lifecycle"
	"safewallet/internal/errors"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database and migrates it on start
func New(params Params) (*sql.DB, error) {
	db, err := Open(params.Config.Persistence.DatabasePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("SQLite database ready", slog.String("path", params.Config.Persistence.DatabasePath))

			go monitorDBPool(monitorCtx, params.Logger, db, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return db.Close()
		},
	})

	return db, nil
}

// Open initializes the database handle, creating the parent directory as needed.
// Both the server and the notifier may open the same file, so writers wait on
// the busy timeout instead of failing.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)
	if path != MemoryPath {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if path != MemoryPath {
		// an in-memory database lives only as long as its connection
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, db *sql.DB, interval time.Duration) {
	if logger == nil || db == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := db.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "SQLite connection wait observed", attrs...)
			}

			prev = cur
		}
	}
}
