package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	redis9 "github.com/redis/go-redis/v9"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/repository"
)

const (
	// SnapshotExp is how long an untouched snapshot is kept
	SnapshotExp = 30 * 24 * time.Hour
)

var _ repository.Snapshot = new(SnapshotRepo)

// SnapshotRepo ...
type SnapshotRepo struct {
	cl *redis9.Client
}

func NewSnapshotRepo(cl *redis9.Client) *SnapshotRepo {
	return &SnapshotRepo{cl: cl}
}

// Save ...
func (r SnapshotRepo) Save(ctx context.Context, key string, s game.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.cl.SetEx(ctx, sn(key), string(b), SnapshotExp).Err()
}

// Load ...
func (r SnapshotRepo) Load(ctx context.Context, key string) (*game.Snapshot, error) {
	str, err := r.cl.Get(ctx, sn(key)).Result()
	if errors.Is(err, redis9.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var s game.Snapshot
	if err = json.Unmarshal([]byte(str), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete ...
func (r SnapshotRepo) Delete(ctx context.Context, key string) error {
	return r.cl.Del(ctx, sn(key)).Err()
}

func keyed(s ...string) string {
	return strings.Join(s, ":")
}

// sn returns snapshot:<key>
func sn(key string) string {
	return keyed("snapshot", key)
}
