package game

import (
	"strconv"

	"github.com/kodekulture/wordjourney/game/word"
)

const (
	// MinCycleLength is the shortest word of the journey cycle
	MinCycleLength = 3
	// CycleSize is the number of lengths the journey cycles through (3..7)
	CycleSize = 5
)

// Difficulty configures a puzzle attempt.
// A zero WordLength means the length follows the level (see LengthForLevel).
type Difficulty struct {
	Name            string    `json:"name"`
	WordLength      int       `json:"word_length"`
	MaxGuesses      int       `json:"max_guesses"`
	BonusGuessGrant int       `json:"bonus_guess_grant"`
	SaveKey         string    `json:"save_key"`
	Tier            word.Tier `json:"-"`
}

var (
	Easy = Difficulty{
		Name: "easy", WordLength: 4, MaxGuesses: 6, BonusGuessGrant: 2,
		SaveKey: "easy_progress", Tier: word.Lower,
	}
	Medium = Difficulty{
		Name: "medium", WordLength: 5, MaxGuesses: 6, BonusGuessGrant: 2,
		SaveKey: "medium_progress", Tier: word.Lower,
	}
	Hard = Difficulty{
		Name: "hard", WordLength: 6, MaxGuesses: 6, BonusGuessGrant: 1,
		SaveKey: "hard_progress", Tier: word.Lower,
	}
	Journey = Difficulty{
		Name: "journey", MaxGuesses: 6, BonusGuessGrant: 2,
		SaveKey: "journey_progress", Tier: word.Upper,
	}
)

// Difficulties returns the level difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Journey}
}

// ParseDifficulty finds a level difficulty by name.
func ParseDifficulty(name string) (Difficulty, bool) {
	for _, d := range Difficulties() {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Daily returns the daily challenge configuration for a word length.
func Daily(length int) Difficulty {
	return Difficulty{
		Name:            "daily",
		WordLength:      length,
		MaxGuesses:      6,
		BonusGuessGrant: 1,
		SaveKey:         "daily_" + strconv.Itoa(length),
		Tier:            word.Lower,
	}
}

// Variable reports whether the word length changes from level to level.
func (d Difficulty) Variable() bool {
	return d.WordLength == 0
}

// Length returns the word length in force at level.
func (d Difficulty) Length(level int) int {
	if d.Variable() {
		return LengthForLevel(level)
	}
	return d.WordLength
}

// PoolIndex returns the 1-based index of level inside its word-length bucket.
// The journey visits each length once per cycle, so its n-th visit of a length uses index n.
func (d Difficulty) PoolIndex(level int) int {
	if d.Variable() {
		return floorDiv(level-1, CycleSize) + 1
	}
	return level
}

// LengthForLevel cycles 3, 4, 5, 6, 7, 3, ... starting at level 1.
func LengthForLevel(level int) int {
	r := (level - 1) % CycleSize
	if r < 0 {
		r += CycleSize
	}
	return MinCycleLength + r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
