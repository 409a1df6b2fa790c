package game

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/lordvidex/x/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordjourney/game/word"
)

func sampleAttempt(t *testing.T) *Attempt {
	t.Helper()
	p, err := NewForLevel(word.Entry{Word: "CRANE", Definition: "a wading bird"}, Medium, 3, alwaysValid)
	require.NoError(t, err)
	return NewLevelAttempt("fela", Medium, 3, p)
}

func TestToGuess(t *testing.T) {
	got := ToGuess(word.Evaluate("EARNS", "CRANE"))
	assert.Equal(t, GuessResponse{Word: "EARNS", Status: []int{3, 3, 3, 4, 1}}, got)
}

func TestToResponse(t *testing.T) {
	a := sampleAttempt(t)
	p := a.Puzzle
	typeWord(p, "EARNS")
	_, err := p.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, p.Eliminate('Z'))
	require.True(t, p.Reveal(0, 'C'))
	typeWord(p, "RA")

	got := ToResponse(a)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, ModeLevel, got.Mode)
	assert.Equal(t, "medium", got.Difficulty)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 5, got.Length)
	assert.Equal(t, "in_progress", got.Status)
	assert.Nil(t, got.CorrectWord, "word is hidden until won")
	assert.Nil(t, got.Definition)
	assert.Equal(t, []GuessResponse{{Word: "EARNS", Status: []int{3, 3, 3, 4, 1}}}, got.Guesses)
	assert.Equal(t, []TileResponse{
		{Letter: "C", Status: int(word.Hint)},
		{Letter: "R"},
		{Letter: "A"},
		{},
		{},
	}, got.Input)
	assert.Equal(t, int(word.Correct), got.Keyboard["C"])
	assert.Equal(t, int(word.Correct), got.Keyboard["N"])
	assert.Equal(t, int(word.Absent), got.Keyboard["Z"])
	assert.Equal(t, []string{"Z"}, got.Eliminated)
	assert.Equal(t, map[string]string{"0": "C"}, got.Revealed)
	assert.Equal(t, 6, got.MaxGuesses)
	assert.Equal(t, 5, got.Remaining)
	assert.False(t, got.CanSubmit)
}

func TestToResponse_Won(t *testing.T) {
	a := sampleAttempt(t)
	typeWord(a.Puzzle, "CRANE")
	out, err := a.Puzzle.Submit(context.Background())
	require.NoError(t, err)

	got := ToResponse(a)
	assert.Equal(t, "won", got.Status)
	assert.Equal(t, ptr.String("CRANE"), got.CorrectWord)
	assert.Equal(t, ptr.String("a wading bird"), got.Definition)

	sub := ToSubmitResponse(a, out)
	assert.Equal(t, "won", sub.Result)
	require.NotNil(t, sub.Guess)
	assert.Equal(t, []int{4, 4, 4, 4, 4}, sub.Guess.Status)
	assert.Nil(t, sub.Invalid)
}

func TestToSubmitResponse(t *testing.T) {
	a := sampleAttempt(t)
	testcases := []struct {
		name    string
		outcome Outcome
		guess   bool
		invalid *string
	}{
		{name: "not ready", outcome: Outcome{Result: ResultNotReady}},
		{name: "invalid", outcome: Outcome{Result: ResultInvalidWord, Guess: word.New("QQQQQ")}, invalid: ptr.String("QQQQQ")},
		{name: "continue", outcome: Outcome{Result: ResultContinue, Guess: word.Evaluate("EARNS", "CRANE")}, guess: true},
		{name: "restored at the limit", outcome: Outcome{Result: ResultOutOfGuesses}},
		{name: "out of guesses", outcome: Outcome{Result: ResultOutOfGuesses, Guess: word.Evaluate("EARNS", "CRANE")}, guess: true},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			got := ToSubmitResponse(a, tt.outcome)
			assert.Equal(t, tt.outcome.Result.String(), got.Result)
			assert.Equal(t, tt.guess, got.Guess != nil)
			assert.Equal(t, tt.invalid, got.Invalid)
			assert.Equal(t, a.ID, got.Attempt.ID)
		})
	}
}

func TestResponse_JSON(t *testing.T) {
	p, err := New(word.Entry{Word: "SUN"}, 3, 6, alwaysValid)
	require.NoError(t, err)
	a := NewDailyAttempt("fela", time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), p)

	b, err := json.Marshal(ToResponse(a))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "daily", m["mode"])
	assert.Equal(t, "2026-03-09", m["date"])
	assert.NotContains(t, m, "level")
	assert.NotContains(t, m, "correct_word")
	assert.NotContains(t, m, "eliminated")
	assert.Equal(t, []any{}, m["guesses"])
}
