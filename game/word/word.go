package word

import (
	"fmt"
	"strings"
)

// LetterStatus is an enum type for the Status of a letter in a word guess.
// The order of the constants matters: a higher value is better knowledge.
type (
	LetterStatus   int
	LetterStatuses []LetterStatus
)

func (s LetterStatuses) Ints() []int {
	ints := make([]int, len(s))
	for i, v := range s {
		ints[i] = int(v)
	}
	return ints
}

// Correct returns true if every status is Correct
func (s LetterStatuses) Correct() bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c != Correct {
			return false
		}
	}
	return true
}

const (
	Empty   LetterStatus = iota // Nothing is known about the letter
	Absent                      // The letter is not in the word to be guessed
	Hint                        // The letter was pre-filled by a reveal
	Present                     // The letter is in the word but in the wrong position
	Correct                     // The letter is in the word and in the correct position
)

var statusNames = [...]string{"empty", "absent", "hint", "present", "correct"}

func (s LetterStatus) String() string {
	if s < Empty || s > Correct {
		return fmt.Sprintf("LetterStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Max returns the better of the two statuses.
func (s LetterStatus) Max(other LetterStatus) LetterStatus {
	if other > s {
		return other
	}
	return s
}

// Tile is a single letter of a guess with its status.
type Tile struct {
	Letter rune
	Status LetterStatus
}

// Word contains a guess and the Status of each of its letters
// for example the guess 'WEIRD' against 'WORLD' has the following
// Stats
//
// W -> Correct
// E -> Absent
// I -> Absent
// R -> Present
// D -> Correct
type Word struct {
	Word  string         `json:"word"`
	Stats LetterStatuses `json:"stats"`
}

func New(word string) Word {
	stats := make([]LetterStatus, len([]rune(word)))
	return Word{strings.ToUpper(word), stats}
}

func (w Word) Runes() []rune {
	return []rune(w.Word)
}

// Correct returns true if the word is correct
func (w Word) Correct() bool {
	if w.Word == "" {
		return false
	}
	return w.Stats.Correct()
}

// Tiles pairs each letter with its status.
func (w Word) Tiles() []Tile {
	runes := w.Runes()
	tiles := make([]Tile, len(runes))
	for i, r := range runes {
		tiles[i] = Tile{Letter: r}
		if i < len(w.Stats) {
			tiles[i].Status = w.Stats[i]
		}
	}
	return tiles
}

// Check compares the word to the correct word,
// sets the LetterStatus of each letter of `w` *Word
// and returns the statuses.
//
// Exact matches are consumed first so a letter guessed more often than it occurs
// in the correct word is only marked Present as many times as it is left over.
// Both words must have the same length.
func (w *Word) Check(correctWord Word) LetterStatuses {
	correctRunes := correctWord.Runes()
	instanceRunes := w.Runes()
	if len(instanceRunes) != len(correctRunes) {
		panic(fmt.Sprintf("word: cannot check %q against %q: length mismatch", w.Word, correctWord.Word))
	}

	wordStatus := make(LetterStatuses, len(instanceRunes))

	// make a dict of the correct letters
	dict := make(map[rune]int)
	for _, v := range correctRunes {
		dict[v] += 1
	}

	// first parse the correct letters
	for i, v := range instanceRunes {
		if v == correctRunes[i] {
			wordStatus[i] = Correct
			dict[v] -= 1
		}
	}

	// parse the letters that have wrong positions
	for i, value := range instanceRunes {
		if wordStatus[i] == Correct {
			continue
		}
		if dict[value] > 0 {
			wordStatus[i] = Present
			dict[value] -= 1
		} else {
			wordStatus[i] = Absent
		}
	}
	w.Stats = wordStatus
	return wordStatus
}

// Evaluate scores guess against target.
func Evaluate(guess, target string) Word {
	w := New(guess)
	w.Check(New(target))
	return w
}

// IsUpper reports whether s is a non-empty string of the letters A-Z only.
func IsUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (w *Word) String() string {
	return w.Word
}
