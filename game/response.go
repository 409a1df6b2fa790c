package game

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/x/ptr"

	"github.com/kodekulture/wordjourney/game/word"
)

type Response struct {
	ID          uuid.UUID         `json:"id"`
	Mode        Mode              `json:"mode"`
	Difficulty  string            `json:"difficulty"`
	Level       int               `json:"level,omitempty"`
	Date        string            `json:"date,omitempty"`
	Length      int               `json:"length"`
	CreatedAt   time.Time         `json:"created_at"`
	Status      string            `json:"status"`
	CorrectWord *string           `json:"correct_word,omitempty"` // returned only once the puzzle is won
	Definition  *string           `json:"definition,omitempty"`   // returned only once the puzzle is won
	Guesses     []GuessResponse   `json:"guesses"`
	Input       []TileResponse    `json:"input"`
	Keyboard    map[string]int    `json:"keyboard"`
	Eliminated  []string          `json:"eliminated,omitempty"`
	Revealed    map[string]string `json:"revealed,omitempty"`
	MaxGuesses  int               `json:"max_guesses"`
	Remaining   int               `json:"remaining_guesses"`
	CanSubmit   bool              `json:"can_submit"`
}

type GuessResponse struct {
	Word   string `json:"word"`
	Status []int  `json:"status"`
}

type TileResponse struct {
	// Letter is empty for a blank position
	Letter string `json:"letter,omitempty"`
	Status int    `json:"status"`
}

// SubmitResponse shows the player the outcome of a submission and the new state.
type SubmitResponse struct {
	Result string         `json:"result"`
	Guess  *GuessResponse `json:"guess,omitempty"`
	// Invalid holds the rejected word when the result is invalid_word
	Invalid *string  `json:"invalid,omitempty"`
	Attempt Response `json:"attempt"`
}

// PowerUpResponse describes what an elimination or a reveal did.
type PowerUpResponse struct {
	Applied  bool     `json:"applied"`
	Letter   string   `json:"letter,omitempty"`
	Position *int     `json:"position,omitempty"`
	Attempt  Response `json:"attempt"`
}

// ToResponse builds the view of an attempt. The caller must hold the attempt's lock.
func ToResponse(a *Attempt) Response {
	p := a.Puzzle
	won := p.Status() == Won
	setWord := func(w string) *string {
		if !won || w == "" {
			return nil
		}
		return ptr.String(w)
	}

	guesses := make([]GuessResponse, 0, len(p.guesses))
	for _, g := range p.Guesses() {
		guesses = append(guesses, ToGuess(g))
	}
	input := make([]TileResponse, 0, p.Length())
	for _, t := range p.InputTiles() {
		tr := TileResponse{Status: int(t.Status)}
		if t.Letter != 0 {
			tr.Letter = string(t.Letter)
		}
		input = append(input, tr)
	}
	keyboard := make(map[string]int)
	for ch, s := range p.Knowledge() {
		keyboard[string(ch)] = int(s)
	}
	var eliminated []string
	for _, ch := range p.Eliminated() {
		eliminated = append(eliminated, string(ch))
	}
	var revealed map[string]string
	if rv := p.Revealed(); len(rv) > 0 {
		revealed = make(map[string]string, len(rv))
		for i, ch := range rv {
			revealed[strconv.Itoa(i)] = string(ch)
		}
	}

	return Response{
		ID:          a.ID,
		Mode:        a.Mode,
		Difficulty:  a.Difficulty.Name,
		Level:       a.Level,
		Date:        a.Date,
		Length:      p.Length(),
		CreatedAt:   a.CreatedAt,
		Status:      p.Status().String(),
		CorrectWord: setWord(p.Target()),
		Definition:  setWord(p.Definition()),
		Guesses:     guesses,
		Input:       input,
		Keyboard:    keyboard,
		Eliminated:  eliminated,
		Revealed:    revealed,
		MaxGuesses:  p.MaxGuesses(),
		Remaining:   p.RemainingGuesses(),
		CanSubmit:   p.CanSubmit(),
	}
}

// ToGuess converts a word.Word to a GuessResponse.
func ToGuess(w word.Word) GuessResponse {
	return GuessResponse{
		Word:   w.Word,
		Status: w.Stats.Ints(),
	}
}

// ToSubmitResponse builds the view of a submission. The caller must hold the attempt's lock.
func ToSubmitResponse(a *Attempt, o Outcome) SubmitResponse {
	res := SubmitResponse{
		Result:  o.Result.String(),
		Attempt: ToResponse(a),
	}
	switch o.Result {
	case ResultInvalidWord:
		res.Invalid = ptr.String(o.Guess.Word)
	case ResultContinue, ResultWon:
		res.Guess = ptr.Obj(ToGuess(o.Guess))
	case ResultOutOfGuesses:
		// the deferred check of a restored attempt evaluates nothing
		if o.Guess.Word != "" {
			res.Guess = ptr.Obj(ToGuess(o.Guess))
		}
	}
	return res
}
