package game

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode tells how an attempt's target was chosen.
type Mode string

const (
	ModeLevel Mode = "level"
	ModeDaily Mode = "daily"
)

// DateLayout formats daily challenge dates.
const DateLayout = "2006-01-02"

// Attempt is a puzzle being played by one player.
//
// The Puzzle must only be used while holding the attempt's lock.
type Attempt struct {
	mu  sync.Mutex
	key string

	ID         uuid.UUID
	Player     string
	Mode       Mode
	Difficulty Difficulty
	Level      int    // set for ModeLevel
	Date       string // set for ModeDaily, DateLayout
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Puzzle     *Puzzle
}

func NewLevelAttempt(player string, d Difficulty, level int, p *Puzzle) *Attempt {
	now := time.Now()
	return &Attempt{
		ID:         uuid.New(),
		Player:     player,
		Mode:       ModeLevel,
		Difficulty: d,
		Level:      level,
		CreatedAt:  now,
		UpdatedAt:  now,
		Puzzle:     p,
		key:        LevelKey(player, d, level),
	}
}

func NewDailyAttempt(player string, date time.Time, p *Puzzle) *Attempt {
	now := time.Now()
	return &Attempt{
		ID:         uuid.New(),
		Player:     player,
		Mode:       ModeDaily,
		Difficulty: Daily(p.Length()),
		Date:       date.Format(DateLayout),
		CreatedAt:  now,
		UpdatedAt:  now,
		Puzzle:     p,
		key:        DailyKey(player, date.Format(DateLayout), p.Length()),
	}
}

func (a *Attempt) Lock() {
	a.mu.Lock()
}

func (a *Attempt) Unlock() {
	a.mu.Unlock()
}

// Touch records activity on the attempt.
func (a *Attempt) Touch() {
	a.UpdatedAt = time.Now()
}

// Key identifies the attempt in storage, it is stable across restarts.
// It does not need the attempt's lock.
func (a *Attempt) Key() string {
	return a.key
}

// LevelKey returns <player>:<save key>:<level>.
func LevelKey(player string, d Difficulty, level int) string {
	return strings.Join([]string{player, d.SaveKey, strconv.Itoa(level)}, ":")
}

// DailyKey returns <player>:daily:<date>:<length>.
func DailyKey(player, date string, length int) string {
	return strings.Join([]string{player, "daily", date, strconv.Itoa(length)}, ":")
}

// DailyResult is a finished daily challenge.
type DailyResult struct {
	Player  string `json:"player"`
	Date    string `json:"date"`
	Length  int    `json:"length"`
	Guesses int    `json:"guesses"`
}
