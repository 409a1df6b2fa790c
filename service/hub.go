package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordjourney/game"
)

const (
	// AttemptIdleDuration is how long an attempt stays in memory without activity.
	// Its snapshot is saved when it is dropped, so the player can pick it up again.
	AttemptIdleDuration = time.Hour
	// FinishedAttemptDuration is how long a won attempt is kept around for the player to look at.
	FinishedAttemptDuration = time.Minute * 15
	// gcCycle is the interval between the mark and the sweep phases
	gcCycle = time.Minute * 15
)

type hub struct {
	mu       sync.RWMutex
	attempts map[uuid.UUID]*game.Attempt
	keys     map[string]uuid.UUID
}

func newHub() *hub {
	return &hub{
		attempts: make(map[uuid.UUID]*game.Attempt),
		keys:     make(map[string]uuid.UUID),
	}
}

// GetAttempt returns the attempt with the given id and a bool indicating whether the attempt was found.
func (h *hub) GetAttempt(id uuid.UUID) (*game.Attempt, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.attempts[id]
	return a, ok
}

// GetByKey returns the attempt stored under a storage key.
func (h *hub) GetByKey(key string) (*game.Attempt, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	id, ok := h.keys[key]
	if !ok {
		return nil, false
	}
	a, ok := h.attempts[id]
	return a, ok
}

// AddAttempt stores a unless an attempt with the same key is already open, in which case
// the open attempt is returned.
func (h *hub) AddAttempt(a *game.Attempt) *game.Attempt {
	key := a.Key()
	h.mu.Lock()
	defer h.mu.Unlock()
	if id, ok := h.keys[key]; ok {
		if existing, ok := h.attempts[id]; ok {
			return existing
		}
	}
	h.attempts[a.ID] = a
	h.keys[key] = a.ID
	return a
}

// DeleteAttempt deletes the attempt with the given id.
func (h *hub) DeleteAttempt(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.delete(id)
}

func (h *hub) delete(id uuid.UUID) {
	a, ok := h.attempts[id]
	if !ok {
		return
	}
	delete(h.attempts, id)
	if h.keys[a.Key()] == id {
		delete(h.keys, a.Key())
	}
}

// Len returns the number of attempts in memory.
func (h *hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.attempts)
}

// expired reports whether a should leave memory. The caller must hold a's lock.
func expired(a *game.Attempt, now time.Time) bool {
	idle := now.Sub(a.UpdatedAt)
	if a.Puzzle.Status() == game.Won {
		return idle >= FinishedAttemptDuration
	}
	return idle >= AttemptIdleDuration
}

// gc drops idle attempts in two phases: attempts marked as garbage are swept on the next
// tick if they are still idle, and their progress is handed to save first.
func (h *hub) gc(ctx context.Context, save func(context.Context, *game.Attempt)) {
	ticker := time.NewTicker(gcCycle)
	defer ticker.Stop()

	isMarkPhase := true
	garbage := make([]*game.Attempt, 0)

	mark := func() {
		garbage = nil
		h.mu.RLock()
		defer h.mu.RUnlock()

		now := time.Now()
		for _, a := range h.attempts {
			a.Lock()
			if expired(a, now) {
				garbage = append(garbage, a)
			}
			a.Unlock()
		}
	}

	sweep := func() {
		now := time.Now()
		swept := 0
		for _, a := range garbage {
			a.Lock()
			// touched since the mark phase
			if !expired(a, now) {
				a.Unlock()
				continue
			}
			if a.Puzzle.Status() != game.Won {
				save(ctx, a)
			}
			a.Unlock()
			h.DeleteAttempt(a.ID)
			swept++
		}
		if swept > 0 {
			log.Debug().Int("swept", swept).Int("open", h.Len()).Msg("attempts collected")
		}
		garbage = nil
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if isMarkPhase {
				mark()
			} else {
				// sweep phase
				sweep()
			}

			isMarkPhase = !isMarkPhase
		}
	}
}
