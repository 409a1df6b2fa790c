package game

// Snapshot is the persisted progress of a puzzle attempt.
// The target is not part of it: it is derived again from the level or the date.
type Snapshot struct {
	Guesses    []string       `json:"guesses"`
	Input      string         `json:"input,omitempty"`
	MaxGuesses int            `json:"max_guesses"`
	Revealed   map[int]string `json:"revealed,omitempty"`
	Eliminated string         `json:"eliminated,omitempty"`
}

// Empty reports whether the snapshot holds no progress worth saving.
func (s Snapshot) Empty() bool {
	return len(s.Guesses) == 0 && s.Input == "" && len(s.Revealed) == 0 && s.Eliminated == ""
}
