package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"emojihub/internal/model"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteRepository keeps the favorites array as one row of a key-value table.
type SQLiteRepository struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
// ":memory:" is accepted for tests.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		cleanPath := filepath.Clean(path)
		if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		dsn = cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteRepository{sqlDB: sqlDB}, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]model.Emoji, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	var value string
	err := r.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, model.FavoritesKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.Emoji{}, nil
		}
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return decode([]byte(value), "sqlite"), nil
}

func (r *SQLiteRepository) Save(ctx context.Context, list []model.Emoji) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil || r.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	data, err := encode(list)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	_, err = r.sqlDB.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		model.FavoritesKey,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Close closes the SQLite handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}

