package docstore

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/jmorales/ciclofit/internal/errors"

	_ "embed"
)

//go:embed schema.sql
var schemaDefinition string

// SQLite is the production Store backed by a SQLite database.
//
// It keeps two connection pools, a single-connection read-write pool and a
// larger read-only pool. This is a best practice mentioned in
// https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
type SQLite struct {
	readWrite *sql.DB
	readOnly  *sql.DB
	logger    *slog.Logger

	// done signals the periodic optimizer to exit; stopped is closed once it
	// has, so Close can wait before tearing down the pools.
	done    chan struct{}
	stopped chan struct{}
}

var _ Store = (*SQLite)(nil)

// NewSQLite connects to the database at url and ensures the schema exists.
// Use ":memory:" for an in-memory database; each in-memory store gets its own
// shared-cache namespace so parallel tests do not share data.
func NewSQLite(ctx context.Context, url string, logger *slog.Logger) (*SQLite, error) {
	store, err := connect(ctx, url, logger)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if _, err = store.readWrite.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	// Recommended performance enhancement for long-lived connections.
	if _, err = store.readWrite.ExecContext(ctx, "PRAGMA optimize = 0x10002;"); err != nil {
		return nil, fmt.Errorf("init optimize database: %w", err)
	}

	go store.runOptimizer()

	return store, nil
}

//nolint:gochecknoglobals // once is used to ensure that the SQLite driver is registered only once.
var once sync.Once

const optimizedDriver = "sqlite3optimized"

// registerOptimizedDriver that executes performance-enhancing pragmas on connection.
func registerOptimizedDriver() {
	sql.Register(optimizedDriver,
		&sqlite3.SQLiteDriver{
			Extensions: nil,
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if _, err := conn.Exec(
					// Performance enhancement by storing temporary tables indices in memory instead of files.
					"PRAGMA temp_store = memory;"+
						// Performance enhancement for reducing syscalls by having the pages in memory-mapped I/O.
						"PRAGMA mmap_size = 30000000000;", nil); err != nil {
					return fmt.Errorf("exec optimization pragmas: %w", err)
				}
				return nil
			},
		})
}

func connect(ctx context.Context, url string, logger *slog.Logger) (*SQLite, error) {
	// For in-memory databases, we need shared cache mode so that both pools access the same data.
	//
	// For parallel tests, we need to use a different database file for each test to avoid sharing data.
	// See https://www.sqlite.org/inmemorydb.html.
	inMemoryConfig := ""
	if strings.Contains(url, ":memory:") {
		url = fmt.Sprintf("file:%s", rand.Text())
		inMemoryConfig = "mode=memory&cache=shared"
	}
	commonConfig := strings.Join([]string{
		// Uses current time.Location for timestamps.
		"_loc=auto",
		// Write-ahead logging enables higher performance and concurrent readers.
		"_journal_mode=wal",
		// Avoids SQLITE_BUSY errors when the database is under load.
		"_busy_timeout=5000",
		// Increases performance at the cost of durability https://www.sqlite.org/pragma.html#pragma_synchronous.
		"_synchronous=normal",
	}, "&")

	// The options without leading underscore are SQLite URI parameters documented at https://www.sqlite.org/uri.html.
	// The options prefixed with underscore '_' are documented at
	// https://pkg.go.dev/github.com/mattn/go-sqlite3#SQLiteDriver.Open.
	readConfig := fmt.Sprintf("file:%s?mode=ro&_txlock=deferred&_query_only=true&%s&%s", url, commonConfig, inMemoryConfig)
	readWriteConfig := fmt.Sprintf("file:%s?mode=rwc&_txlock=immediate&%s&%s", url, commonConfig, inMemoryConfig)

	once.Do(registerOptimizedDriver)

	readWriteDB, err := sql.Open(optimizedDriver, readWriteConfig)
	if err != nil {
		return nil, fmt.Errorf("open read-write database: %w", err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "opened database", slog.String("sqlDsn", readWriteConfig))

	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	// Since sql.DB is lazy, we need to ping it to ensure the connection is established.
	if err = readWriteDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping read-write database: %w", err)
	}

	readDB, err := sql.Open(optimizedDriver, readConfig)
	if err != nil {
		return nil, fmt.Errorf("open read database: %w", err)
	}

	maxReadConns := 10
	readDB.SetMaxOpenConns(maxReadConns)
	readDB.SetMaxIdleConns(maxReadConns)
	readDB.SetConnMaxLifetime(time.Hour)
	readDB.SetConnMaxIdleTime(time.Hour)

	return &SQLite{
		readWrite: readWriteDB,
		readOnly:  readDB,
		logger:    logger,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}, nil
}

// Close stops the periodic optimizer and closes both connection pools. It
// must be called exactly once.
func (s *SQLite) Close() error {
	close(s.done)
	<-s.stopped
	return errors.Join(s.readOnly.Close(), s.readWrite.Close())
}

// runOptimizer runs optimize once per hour until Close is called.
// See https://www.sqlite.org/pragma.html#pragma_optimize.
func (s *SQLite) runOptimizer() {
	defer close(s.stopped)
	ctx := context.Background()
	for {
		select {
		case <-s.done:
			return
		case <-time.After(time.Hour):
		}
		start := time.Now()
		if _, err := s.readWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			err = fmt.Errorf("optimize database: %w", err)
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", errors.SlogError(err))
		} else {
			s.logger.LogAttrs(ctx, slog.LevelInfo, "optimized database",
				slog.Duration("duration", time.Since(start)))
		}
	}
}
