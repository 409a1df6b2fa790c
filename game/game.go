package game

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode"

	"github.com/kodekulture/wordjourney/game/word"
)

type Status int

const (
	InProgress      Status = iota
	Won                    // terminal
	WaitingForExtra        // out of guesses until bonus guesses are granted
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case WaitingForExtra:
		return "waiting_for_extra"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the kind of outcome of a submission.
type Result int

const (
	ResultNotReady Result = iota
	ResultInvalidWord
	ResultContinue
	ResultWon
	ResultOutOfGuesses
)

func (r Result) String() string {
	switch r {
	case ResultNotReady:
		return "not_ready"
	case ResultInvalidWord:
		return "invalid_word"
	case ResultContinue:
		return "continue"
	case ResultWon:
		return "won"
	case ResultOutOfGuesses:
		return "out_of_guesses"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Outcome is returned by Submit.
// Guess is the evaluated row, or the rejected word (without stats) for ResultInvalidWord.
type Outcome struct {
	Result Result
	Guess  word.Word
}

var (
	ErrTargetLength  = errors.New("target word does not match the word length")
	ErrTargetLetters = errors.New("target word must be upper-case A-Z")
	ErrMaxGuesses    = errors.New("max guesses must be positive")
	ErrNoValidator   = errors.New("validator is required")
	ErrSnapshot      = errors.New("invalid snapshot")
)

// Puzzle is the state machine of one puzzle attempt.
//
// A Puzzle is not safe for concurrent use: the owner must serialize calls.
// Only Submit blocks, on the validator.
type Puzzle struct {
	validator  word.Validator
	target     word.Word
	definition string
	length     int

	guesses    []word.Word
	input      []rune
	maxGuesses int
	knowledge  map[rune]word.LetterStatus
	eliminated map[rune]struct{}
	revealed   map[int]rune
	status     Status
}

// New creates a puzzle for target. The target must be upper-case and exactly length letters long.
func New(target word.Entry, length, maxGuesses int, v word.Validator) (*Puzzle, error) {
	if len([]rune(target.Word)) != length {
		return nil, fmt.Errorf("%w: %q is not %d letters", ErrTargetLength, target.Word, length)
	}
	if !word.IsUpper(target.Word) {
		return nil, fmt.Errorf("%w: %q", ErrTargetLetters, target.Word)
	}
	if maxGuesses <= 0 {
		return nil, ErrMaxGuesses
	}
	if v == nil {
		return nil, ErrNoValidator
	}
	return &Puzzle{
		validator:  v,
		target:     word.New(target.Word),
		definition: target.Definition,
		length:     length,
		maxGuesses: maxGuesses,
		knowledge:  make(map[rune]word.LetterStatus),
		eliminated: make(map[rune]struct{}),
		revealed:   make(map[int]rune),
		status:     InProgress,
	}, nil
}

// NewForLevel creates a puzzle with the length and guess limit of d at level.
func NewForLevel(target word.Entry, d Difficulty, level int, v word.Validator) (*Puzzle, error) {
	return New(target, d.Length(level), d.MaxGuesses, v)
}

// Press appends ch to the input.
// It returns false when the puzzle is not in progress, the free positions are filled
// or ch is eliminated.
func (p *Puzzle) Press(ch rune) bool {
	ch = unicode.ToUpper(ch)
	if ch < 'A' || ch > 'Z' {
		return false
	}
	if p.status != InProgress || len(p.input) >= p.capacity() {
		return false
	}
	if _, ok := p.eliminated[ch]; ok {
		return false
	}
	p.input = append(p.input, ch)
	return true
}

// Delete removes the last typed letter.
func (p *Puzzle) Delete() bool {
	if len(p.input) == 0 {
		return false
	}
	p.input = p.input[:len(p.input)-1]
	return true
}

// Submit evaluates the current input.
//
// An invalid word keeps the input so it can be edited. The error is non-nil only when
// the validator fails or ctx is done, and then the puzzle is unchanged.
func (p *Puzzle) Submit(ctx context.Context) (Outcome, error) {
	if !p.CanSubmit() {
		return Outcome{Result: ResultNotReady}, nil
	}
	// a restored attempt may already sit at its limit
	if len(p.guesses) >= p.maxGuesses {
		p.status = WaitingForExtra
		return Outcome{Result: ResultOutOfGuesses}, nil
	}

	guess := p.effectiveGuess()
	ok, err := p.validator.Validate(ctx, guess, p.length)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to validate %q: %w", guess, err)
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{Result: ResultInvalidWord, Guess: word.New(guess)}, nil
	}

	row := word.New(guess)
	row.Check(p.target)
	p.guesses = append(p.guesses, row)
	p.input = p.input[:0]
	p.learn(row)

	switch {
	case row.Correct():
		p.status = Won
		return Outcome{Result: ResultWon, Guess: cloneWord(row)}, nil
	case len(p.guesses) >= p.maxGuesses:
		p.status = WaitingForExtra
		return Outcome{Result: ResultOutOfGuesses, Guess: cloneWord(row)}, nil
	default:
		return Outcome{Result: ResultContinue, Guess: cloneWord(row)}, nil
	}
}

// GrantBonusGuesses raises the guess limit by n and resumes a stalled puzzle.
// n must be positive.
func (p *Puzzle) GrantBonusGuesses(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("game: bonus guesses must be positive, got %d", n))
	}
	p.maxGuesses += n
	if p.status == WaitingForExtra {
		p.status = InProgress
	}
}

// Eliminate removes ch from the typable letters.
// It refuses letters that are already eliminated or that occur in the target.
func (p *Puzzle) Eliminate(ch rune) bool {
	ch = unicode.ToUpper(ch)
	if ch < 'A' || ch > 'Z' {
		return false
	}
	if _, ok := p.eliminated[ch]; ok {
		return false
	}
	if slices.Contains(p.target.Runes(), ch) {
		return false
	}
	p.eliminated[ch] = struct{}{}
	p.merge(ch, word.Absent)
	p.input = slices.DeleteFunc(p.input, func(r rune) bool { return r == ch })
	return true
}

// Reveal pre-fills position index with the target's letter.
// It refuses an index out of range, an index already revealed, or a letter the target
// does not have at index.
func (p *Puzzle) Reveal(index int, letter rune) bool {
	letter = unicode.ToUpper(letter)
	target := p.target.Runes()
	if index < 0 || index >= len(target) || target[index] != letter {
		return false
	}
	if _, ok := p.revealed[index]; ok {
		return false
	}
	p.revealed[index] = letter
	p.merge(letter, word.Correct)
	if c := p.capacity(); len(p.input) > c {
		p.input = p.input[:c]
	}
	return true
}

// Restore replaces the attempt's progress with s.
//
// Knowledge is rebuilt from the guesses, the reveals and the eliminations. A snapshot
// holding the target among its guesses is rejected.
// The status is always InProgress; an attempt restored at its limit stalls on the next
// Submit. On error the puzzle is left untouched.
func (p *Puzzle) Restore(s Snapshot) error {
	if s.MaxGuesses <= 0 {
		return fmt.Errorf("%w: max guesses %d", ErrSnapshot, s.MaxGuesses)
	}
	if len(s.Guesses) > s.MaxGuesses {
		return fmt.Errorf("%w: %d guesses over a limit of %d", ErrSnapshot, len(s.Guesses), s.MaxGuesses)
	}

	next := &Puzzle{
		validator:  p.validator,
		target:     p.target,
		definition: p.definition,
		length:     p.length,
		maxGuesses: s.MaxGuesses,
		knowledge:  make(map[rune]word.LetterStatus),
		eliminated: make(map[rune]struct{}),
		revealed:   make(map[int]rune),
		status:     InProgress,
	}
	for _, g := range s.Guesses {
		if len([]rune(g)) != p.length || !word.IsUpper(g) {
			return fmt.Errorf("%w: guess %q", ErrSnapshot, g)
		}
		row := word.New(g)
		row.Check(p.target)
		// a won attempt is finished, it has nothing to resume
		if row.Correct() {
			return fmt.Errorf("%w: guess %q solves the puzzle", ErrSnapshot, g)
		}
		next.guesses = append(next.guesses, row)
		next.learn(row)
	}
	for index, letter := range s.Revealed {
		rs := []rune(letter)
		if len(rs) != 1 || !next.Reveal(index, rs[0]) {
			return fmt.Errorf("%w: reveal %q at %d", ErrSnapshot, letter, index)
		}
	}
	for _, ch := range s.Eliminated {
		if !next.Eliminate(ch) {
			return fmt.Errorf("%w: elimination of %q", ErrSnapshot, ch)
		}
	}
	for _, ch := range s.Input {
		if !next.Press(ch) {
			return fmt.Errorf("%w: input %q", ErrSnapshot, s.Input)
		}
	}

	*p = *next
	return nil
}

// Snapshot returns the attempt's progress in a form the caller can persist.
func (p *Puzzle) Snapshot() Snapshot {
	s := Snapshot{
		Guesses:    make([]string, len(p.guesses)),
		Input:      string(p.input),
		MaxGuesses: p.maxGuesses,
		Eliminated: string(p.Eliminated()),
	}
	for i, g := range p.guesses {
		s.Guesses[i] = g.Word
	}
	if len(p.revealed) > 0 {
		s.Revealed = make(map[int]string, len(p.revealed))
		for i, r := range p.revealed {
			s.Revealed[i] = string(r)
		}
	}
	return s
}

// learn merges the statuses of a guess into the letter knowledge.
func (p *Puzzle) learn(row word.Word) {
	for _, t := range row.Tiles() {
		p.merge(t.Letter, t.Status)
	}
}

// merge keeps the best status seen for ch.
func (p *Puzzle) merge(ch rune, s word.LetterStatus) {
	p.knowledge[ch] = p.knowledge[ch].Max(s)
}

// capacity is the number of positions the player types into.
func (p *Puzzle) capacity() int {
	return p.length - len(p.revealed)
}

// effectiveGuess lays the typed letters into the positions that are not revealed.
func (p *Puzzle) effectiveGuess() string {
	out := make([]rune, p.length)
	next := 0
	for i := range out {
		if r, ok := p.revealed[i]; ok {
			out[i] = r
			continue
		}
		out[i] = p.input[next]
		next++
	}
	return string(out)
}

func cloneWord(w word.Word) word.Word {
	return word.Word{Word: w.Word, Stats: slices.Clone(w.Stats)}
}

// Guesses returns a copy of the evaluated guesses, oldest first.
func (p *Puzzle) Guesses() []word.Word {
	out := make([]word.Word, len(p.guesses))
	for i, g := range p.guesses {
		out[i] = cloneWord(g)
	}
	return out
}

// Input returns the typed letters.
func (p *Puzzle) Input() string {
	return string(p.input)
}

// InputTiles returns the row being typed: revealed positions are Hint,
// typed and blank positions are Empty (blank letters are 0).
func (p *Puzzle) InputTiles() []word.Tile {
	tiles := make([]word.Tile, p.length)
	next := 0
	for i := range tiles {
		if r, ok := p.revealed[i]; ok {
			tiles[i] = word.Tile{Letter: r, Status: word.Hint}
			continue
		}
		if next < len(p.input) {
			tiles[i] = word.Tile{Letter: p.input[next]}
			next++
		}
	}
	return tiles
}

func (p *Puzzle) MaxGuesses() int {
	return p.maxGuesses
}

// RemainingGuesses returns how many guesses are left before the puzzle stalls.
func (p *Puzzle) RemainingGuesses() int {
	return max(p.maxGuesses-len(p.guesses), 0)
}

// Knowledge returns a copy of the best status seen for each letter.
func (p *Puzzle) Knowledge() map[rune]word.LetterStatus {
	return maps.Clone(p.knowledge)
}

// Eliminated returns the eliminated letters in alphabetical order.
func (p *Puzzle) Eliminated() []rune {
	return slices.Sorted(maps.Keys(p.eliminated))
}

// Revealed returns a copy of the revealed positions.
func (p *Puzzle) Revealed() map[int]rune {
	return maps.Clone(p.revealed)
}

func (p *Puzzle) Status() Status {
	return p.status
}

// IsInputFull reports whether every free position has a letter.
func (p *Puzzle) IsInputFull() bool {
	return len(p.input) == p.capacity()
}

// CanSubmit reports whether Submit would evaluate the input.
func (p *Puzzle) CanSubmit() bool {
	return p.status == InProgress && p.IsInputFull()
}

// Length returns the effective word length.
func (p *Puzzle) Length() int {
	return p.length
}

// Target returns the hidden word.
func (p *Puzzle) Target() string {
	return p.target.Word
}

func (p *Puzzle) Definition() string {
	return p.definition
}

// UnrevealedPositions returns the positions neither revealed nor already guessed correctly.
func (p *Puzzle) UnrevealedPositions() []int {
	solved := make(map[int]bool)
	for _, g := range p.guesses {
		for i, s := range g.Stats {
			if s == word.Correct {
				solved[i] = true
			}
		}
	}
	var out []int
	for i := range p.length {
		if _, ok := p.revealed[i]; !ok && !solved[i] {
			out = append(out, i)
		}
	}
	return out
}

// EliminationCandidates returns the letters that may be eliminated and that the player
// has not already learned are absent, alphabetically.
func (p *Puzzle) EliminationCandidates() []rune {
	var out []rune
	for ch := 'A'; ch <= 'Z'; ch++ {
		if _, ok := p.eliminated[ch]; ok {
			continue
		}
		if p.knowledge[ch] != word.Empty || slices.Contains(p.target.Runes(), ch) {
			continue
		}
		out = append(out, ch)
	}
	return out
}
