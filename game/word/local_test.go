package word

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal(t *testing.T) {
	got, err := NewLocal()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, got.Lengths())
	for _, l := range got.Lengths() {
		assert.Greater(t, len(got.Levels(l)), 0, "level words should be loaded for length %d", l)
	}
	for _, l := range DailyLengths {
		assert.Greater(t, len(got.Daily(l)), 0, "daily pool should be loaded for length %d", l)
	}
}

func TestDictionary_Validate(t *testing.T) {
	d, err := NewLocal()
	require.NoError(t, err)
	ctx := context.Background()

	consonants := []rune{'B', 'C', 'D', 'F', 'G', 'H', 'J', 'K', 'L', 'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'X', 'Z'}
	badWord := func(n int) string {
		rns := make([]rune, 0, n)
		for range n {
			rns = append(rns, consonants[gofakeit.Number(0, len(consonants)-1)])
		}
		return string(rns)
	}

	correct := []string{"CRANE", "SLOTH", "GARDEN", "SUN", "JOURNEY", "hope"}
	for _, tt := range correct {
		t.Run(fmt.Sprintf("correct %s", tt), func(t *testing.T) {
			ok, err := d.Validate(ctx, tt, len(tt))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	for i := 0; i < 3; i++ {
		tt := badWord(5)
		t.Run(fmt.Sprintf("incorrect %s", tt), func(t *testing.T) {
			ok, err := d.Validate(ctx, tt, 5)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	t.Run("length mismatch", func(t *testing.T) {
		ok, err := d.Validate(ctx, "CRANE", 4)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := d.Validate(cctx, "CRANE", 5)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDictionary_DailyExcludesLevelWords(t *testing.T) {
	d, err := NewLocal()
	require.NoError(t, err)

	for _, l := range DailyLengths {
		levels := make(map[string]struct{})
		for _, e := range d.Levels(l) {
			levels[e.Word] = struct{}{}
		}
		pool := d.Daily(l)
		assert.IsIncreasing(t, pool)
		for _, w := range pool {
			_, isLevel := levels[w]
			assert.Falsef(t, isLevel, "%s is a level word", w)
			assert.Len(t, w, l)
		}
	}
	assert.NotContains(t, d.Daily(4), "HOPE")
	assert.NotContains(t, d.Daily(5), "CRANE")
}

func TestDictionary_Definition(t *testing.T) {
	d, err := NewLocal()
	require.NoError(t, err)

	assert.Equal(t, "a large wading bird with long legs and neck", d.Definition("crane"))
	assert.Equal(t, "feel concern or interest", d.Definition("CARE"))
	assert.Empty(t, d.Definition("DUSK"), "words without a definition show nothing")
}

func TestNewDictionary(t *testing.T) {
	testCases := []struct {
		name    string
		levels  string
		valid   string
		defs    string
		wantErr bool
	}{
		{"valid documents", `{"3":[{"word":"cat","definition":" pet "}]}`, `{"3":["dog","toolong"]}`, ``, false},
		{"broken levels", `{`, `{}`, ``, true},
		{"broken valid", `{}`, `[`, ``, true},
		{"bad bucket", `{"three":[]}`, `{}`, ``, true},
		{"broken definitions", `{}`, `{}`, `[1]`, true},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDictionary([]byte(tt.levels), []byte(tt.valid), []byte(tt.defs))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []Entry{{Word: "CAT", Definition: "pet"}}, d.Levels(3))
			ok, _ := d.Validate(context.Background(), "DOG", 3)
			assert.True(t, ok)
			ok, _ = d.Validate(context.Background(), "CAT", 3)
			assert.True(t, ok, "level words are valid guesses")
		})
	}
}
