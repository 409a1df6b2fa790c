// Package sqlite stores player progress in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
	player     TEXT    NOT NULL,
	save_key   TEXT    NOT NULL,
	level      INTEGER NOT NULL CHECK (level >= 1),
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (player, save_key)
);
CREATE TABLE IF NOT EXISTS daily_results (
	player     TEXT    NOT NULL,
	date       TEXT    NOT NULL,
	length     INTEGER NOT NULL,
	guesses    INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (player, date, length)
);`

// Open opens (and creates if missing) the database file at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

var _ repository.Progress = new(ProgressRepo)

type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Level implements repository.Progress.
func (r *ProgressRepo) Level(ctx context.Context, player, saveKey string) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx,
		`SELECT level FROM progress WHERE player = ? AND save_key = ?`,
		player, saveKey,
	).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return level, nil
}

// SetLevel implements repository.Progress.
func (r *ProgressRepo) SetLevel(ctx context.Context, player, saveKey string, level int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (player, save_key, level) VALUES (?, ?, ?)
		ON CONFLICT (player, save_key) DO UPDATE SET level = excluded.level, updated_at = CURRENT_TIMESTAMP`,
		player, saveKey, level,
	)
	return err
}

// FinishDaily implements repository.Progress.
func (r *ProgressRepo) FinishDaily(ctx context.Context, res game.DailyResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results (player, date, length, guesses) VALUES (?, ?, ?, ?)`,
		res.Player, res.Date, res.Length, res.Guesses,
	)
	return err
}

// DailyFinished implements repository.Progress.
func (r *ProgressRepo) DailyFinished(ctx context.Context, player, date string, length int) (bool, error) {
	var cnt int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE player = ? AND date = ? AND length = ?`,
		player, date, length,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}
