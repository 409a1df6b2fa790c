// generator.go: where target words come from and how guesses are validated

package word

import "context"

// Entry is a target word with the definition shown once it is solved.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Validator answers whether guess is a dictionary word of the given length.
// guess is always upper-case. Implementations must be side-effect free.
type Validator interface {
	Validate(ctx context.Context, guess string, length int) (bool, error)
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(ctx context.Context, guess string, length int) (bool, error)

func (f ValidatorFunc) Validate(ctx context.Context, guess string, length int) (bool, error) {
	return f(ctx, guess, length)
}

// Source supplies the word pools targets are drawn from.
type Source interface {
	Validator
	// Levels returns the level words of the given length in a stable order
	Levels(length int) []Entry
	// Daily returns the daily challenge pool of the given length in a stable order
	Daily(length int) []string
	// Definition returns the definition of w or an empty string
	Definition(w string) string
}
