// Package badgr is an adapter for the badgerDB
package badgr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/repository"
)

const prefix = "snapshot:"

// Open opens the badger database at dir with logs going through zerolog.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(logger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dir, err)
	}
	return db, nil
}

var _ repository.Snapshot = new(SnapshotRepo)

type SnapshotRepo struct {
	db  *badger.DB
	ttl time.Duration
}

// New creates a snapshot store. A zero ttl keeps snapshots forever.
func New(db *badger.DB, ttl time.Duration) *SnapshotRepo {
	return &SnapshotRepo{db: db, ttl: ttl}
}

// Save implements repository.Snapshot.
func (r *SnapshotRepo) Save(_ context.Context, key string, s game.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(k(key), b)
		if r.ttl > 0 {
			e = e.WithTTL(r.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Load implements repository.Snapshot.
func (r *SnapshotRepo) Load(_ context.Context, key string) (*game.Snapshot, error) {
	var s game.Snapshot
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete implements repository.Snapshot.
func (r *SnapshotRepo) Delete(_ context.Context, key string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(k(key))
	})
}

func k(key string) []byte {
	return []byte(prefix + key)
}

// logger sends badger's logs to zerolog.
type logger struct{}

func (logger) Errorf(f string, v ...interface{}) {
	log.Error().Str("component", "badger").Msgf(f, v...)
}

func (logger) Warningf(f string, v ...interface{}) {
	log.Warn().Str("component", "badger").Msgf(f, v...)
}

func (logger) Infof(f string, v ...interface{}) {
	log.Debug().Str("component", "badger").Msgf(f, v...)
}

func (logger) Debugf(f string, v ...interface{}) {
	log.Trace().Str("component", "badger").Msgf(f, v...)
}
