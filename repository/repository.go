// Package repository is responsible for the permanent storage of data of this application
package repository

import (
	"context"
	"errors"

	"github.com/kodekulture/wordjourney/game"
)

//go:generate mockgen -source=repository.go -destination=../internal/mocks/repository.go -package=mocks

// ErrNotFound is returned by stores when nothing is saved under a key.
var ErrNotFound = errors.New("not found")

// Snapshot stores the progress of unfinished attempts.
// Keys come from game.Attempt.Key.
type Snapshot interface {
	// Save replaces the snapshot stored under key
	Save(ctx context.Context, key string, s game.Snapshot) error

	// Load returns the snapshot stored under key or ErrNotFound
	Load(ctx context.Context, key string) (*game.Snapshot, error)

	// Delete removes the snapshot, deleting a missing key is a no-op
	Delete(ctx context.Context, key string) error
}

// Progress stores how far each player got.
type Progress interface {
	// Level returns the level the player is on for a save key, 1 when the player never played it
	Level(ctx context.Context, player, saveKey string) (int, error)

	// SetLevel records the level the player is on
	SetLevel(ctx context.Context, player, saveKey string, level int) error

	// FinishDaily records a solved daily challenge, finishing it again is a no-op
	FinishDaily(ctx context.Context, res game.DailyResult) error

	// DailyFinished reports whether the player solved the daily challenge of that date and length
	DailyFinished(ctx context.Context, player, date string, length int) (bool, error)
}
