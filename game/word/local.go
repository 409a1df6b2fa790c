// local.go: the dictionary bundled with the binary

package word

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	//go:embed resources/words.json
	levelContent []byte

	//go:embed resources/valid_words.json
	validContent []byte

	//go:embed resources/daily_word_definitions.json
	definitionContent []byte

	// DailyLengths are the word lengths offered by the daily challenge
	DailyLengths = []int{4, 5, 6}
)

var _ Source = (*Dictionary)(nil)

// Dictionary holds the level words, the set of valid guesses and the daily pools.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	levels      map[int][]Entry
	valid       map[int]map[string]struct{}
	daily       map[int][]string
	definitions map[string]string
}

// NewLocal loads the embedded dictionary.
func NewLocal() (*Dictionary, error) {
	return NewDictionary(levelContent, validContent, definitionContent)
}

// NewDictionary parses the three dictionary documents:
// level words keyed by length, valid words keyed by length, and daily definitions keyed by word.
func NewDictionary(levels, valid, definitions []byte) (*Dictionary, error) {
	var (
		rawLevels map[string][]Entry
		rawValid  map[string][]string
		rawDefs   map[string]string
	)
	if err := json.Unmarshal(levels, &rawLevels); err != nil {
		return nil, fmt.Errorf("failed to parse level words: %w", err)
	}
	if err := json.Unmarshal(valid, &rawValid); err != nil {
		return nil, fmt.Errorf("failed to parse valid words: %w", err)
	}
	if len(definitions) > 0 {
		if err := json.Unmarshal(definitions, &rawDefs); err != nil {
			return nil, fmt.Errorf("failed to parse daily definitions: %w", err)
		}
	}

	d := &Dictionary{
		levels:      make(map[int][]Entry),
		valid:       make(map[int]map[string]struct{}),
		daily:       make(map[int][]string),
		definitions: make(map[string]string, len(rawDefs)),
	}
	for key, entries := range rawLevels {
		length, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid level bucket %q: %w", key, err)
		}
		for _, e := range entries {
			w := normalize(e.Word)
			if len(w) != length || !IsUpper(w) {
				continue
			}
			d.levels[length] = append(d.levels[length], Entry{Word: w, Definition: strings.TrimSpace(e.Definition)})
			d.addValid(length, w)
		}
	}
	for key, words := range rawValid {
		length, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid word bucket %q: %w", key, err)
		}
		for _, w := range words {
			w = normalize(w)
			if len(w) == length && IsUpper(w) {
				d.addValid(length, w)
			}
		}
	}
	for w, def := range rawDefs {
		d.definitions[normalize(w)] = strings.TrimSpace(def)
	}
	d.buildDaily()
	return d, nil
}

func (d *Dictionary) addValid(length int, w string) {
	set, ok := d.valid[length]
	if !ok {
		set = make(map[string]struct{})
		d.valid[length] = set
	}
	set[w] = struct{}{}
}

// buildDaily fills the daily pools: valid words that are never used as level words.
func (d *Dictionary) buildDaily() {
	excluded := make(map[string]struct{})
	for _, entries := range d.levels {
		for _, e := range entries {
			excluded[e.Word] = struct{}{}
		}
	}
	for _, length := range DailyLengths {
		pool := make([]string, 0, len(d.valid[length]))
		for w := range d.valid[length] {
			if _, ok := excluded[w]; !ok {
				pool = append(pool, w)
			}
		}
		slices.Sort(pool)
		d.daily[length] = pool
	}
}

// Validate reports whether guess is a known word of the given length.
func (d *Dictionary) Validate(ctx context.Context, guess string, length int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if len(guess) != length {
		return false, nil
	}
	_, ok := d.valid[length][normalize(guess)]
	return ok, nil
}

// Levels returns a copy of the level words of the given length in file order.
func (d *Dictionary) Levels(length int) []Entry {
	return slices.Clone(d.levels[length])
}

// Daily returns a copy of the sorted daily pool of the given length.
func (d *Dictionary) Daily(length int) []string {
	return slices.Clone(d.daily[length])
}

// Definition returns the definition of w, preferring level definitions.
// Words without a definition return an empty string.
func (d *Dictionary) Definition(w string) string {
	w = normalize(w)
	for _, e := range d.levels[len(w)] {
		if e.Word == w {
			return e.Definition
		}
	}
	return d.definitions[w]
}

// Lengths returns the word lengths that have level words, ascending.
func (d *Dictionary) Lengths() []int {
	lengths := make([]int, 0, len(d.levels))
	for l := range d.levels {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	return lengths
}

func normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}
