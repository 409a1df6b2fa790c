package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/repository"
)

//go:embed sql/schema.sql
var schema string

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Connect opens a pool to url and checks the connection.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate creates the tables when they do not exist.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

var _ repository.Progress = new(ProgressRepo)

type ProgressRepo struct {
	db DBTX
}

func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

const levelQuery = `SELECT level FROM progress WHERE player = $1 AND save_key = $2`

// Level implements repository.Progress.
func (r *ProgressRepo) Level(ctx context.Context, player, saveKey string) (int, error) {
	var level int32
	err := r.db.QueryRow(ctx, levelQuery, player, saveKey).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return int(level), nil
}

const setLevelQuery = `INSERT INTO progress (player, save_key, level) VALUES ($1, $2, $3)
ON CONFLICT (player, save_key) DO UPDATE SET level = EXCLUDED.level, updated_at = now()`

// SetLevel implements repository.Progress.
func (r *ProgressRepo) SetLevel(ctx context.Context, player, saveKey string, level int) error {
	_, err := r.db.Exec(ctx, setLevelQuery, player, saveKey, int32(level))
	return err
}

const finishDailyQuery = `INSERT INTO daily_results (player, date, length, guesses) VALUES ($1, $2, $3, $4)
ON CONFLICT (player, date, length) DO NOTHING`

// FinishDaily implements repository.Progress.
func (r *ProgressRepo) FinishDaily(ctx context.Context, res game.DailyResult) error {
	_, err := r.db.Exec(ctx, finishDailyQuery, res.Player, res.Date, int32(res.Length), int32(res.Guesses))
	return err
}

const dailyFinishedQuery = `SELECT EXISTS (SELECT 1 FROM daily_results WHERE player = $1 AND date = $2 AND length = $3)`

// DailyFinished implements repository.Progress.
func (r *ProgressRepo) DailyFinished(ctx context.Context, player, date string, length int) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, dailyFinishedQuery, player, date, int32(length)).Scan(&ok)
	return ok, err
}
