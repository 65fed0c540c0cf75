// Package storage opens the key/value medium selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/imob/internal/config"
	"github.com/dmitrijs2005/imob/internal/dbx"
	"github.com/dmitrijs2005/imob/internal/migrations"
	"github.com/dmitrijs2005/imob/internal/repositories/kv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RedisPrefix namespaces imob keys inside a shared Redis database.
const RedisPrefix = "imob:"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the repository for cfg.Storage together with the resource
// that must be closed when the application exits. SQL media are migrated
// before use.
func Open(ctx context.Context, cfg *config.Config) (kv.Repository, io.Closer, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return kv.NewMemoryRepository(), nopCloser{}, nil

	case config.StorageSQLite:
		db, err := openSQL(ctx, "sqlite", cfg.DSN, dbx.DialectSQLite)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewSQLRepository(db, dbx.DialectSQLite), db, nil

	case config.StoragePostgres:
		db, err := openSQL(ctx, "pgx", cfg.DSN, dbx.DialectPostgres)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewSQLRepository(db, dbx.DialectPostgres), db, nil

	case config.StorageRedis:
		rdb, err := kv.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedisRepository(rdb, RedisPrefix), rdb, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func openSQL(ctx context.Context, driver, dsn string, dialect dbx.Dialect) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect == dbx.DialectSQLite {
		// one connection keeps ":memory:" databases shared and serialises writers
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := migrations.Up(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}
