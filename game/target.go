package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/kodekulture/wordjourney/game/word"
)

var ErrDailyLength = errors.New("no daily challenge for this word length")

// Picker chooses the target word of a level or a daily challenge.
// The choice depends only on its inputs, so it is the same for every player and every run.
type Picker struct {
	Source    word.Source
	Selector  word.Selector
	Partition word.Partition
}

// NewPicker returns a Picker using the global seed and the default partition.
func NewPicker(src word.Source) Picker {
	return Picker{
		Source:    src,
		Selector:  word.NewSelector(word.GlobalSeed),
		Partition: word.DefaultPartition,
	}
}

// Level returns the target of level (1-based) for d.
func (p Picker) Level(d Difficulty, level int) (word.Entry, error) {
	length := d.Length(level)
	entries := p.Source.Levels(length)
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	pool, err := p.Partition.Pool(p.Selector.Shuffle(words), length, d.Tier)
	if err != nil {
		return word.Entry{}, fmt.Errorf("level pool of length %d: %w", length, err)
	}
	w, err := word.WordAt(pool, d.PoolIndex(level))
	if err != nil {
		return word.Entry{}, fmt.Errorf("level pool of length %d: %w", length, err)
	}
	return word.Entry{Word: w, Definition: p.Source.Definition(w)}, nil
}

// Daily returns the target of the daily challenge of length on date.
func (p Picker) Daily(date time.Time, length int) (word.Entry, error) {
	if !slices.Contains(word.DailyLengths, length) {
		return word.Entry{}, fmt.Errorf("%w: %d", ErrDailyLength, length)
	}
	w, err := word.DailyWord(p.Source.Daily(length), date, length)
	if err != nil {
		return word.Entry{}, fmt.Errorf("daily pool of length %d: %w", length, err)
	}
	return word.Entry{Word: w, Definition: p.Source.Definition(w)}, nil
}
