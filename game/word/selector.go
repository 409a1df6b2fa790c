// selector.go: deterministic mapping from a level or a date to a word

package word

import (
	"errors"
	"slices"
	"time"
)

// GlobalSeed orders the level pools. Every install uses the same seed
// so level N is the same word for every player.
const GlobalSeed int64 = 8_121_844

var (
	ErrEmptyPool    = errors.New("word pool is empty")
	ErrPoolTooSmall = errors.New("word pool is smaller than its partition boundary")
)

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// Random is a 48-bit linear congruential generator.
// Its output depends only on the seed, never on the platform or the Go release,
// which math/rand does not promise.
type Random struct {
	seed uint64
}

func NewRandom(seed int64) *Random {
	return &Random{seed: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(r.seed >> (48 - bits))
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		panic("word: IntN called with a non-positive bound")
	}
	bound := int32(n)
	if bound&(-bound) == bound { // power of two
		return int((int64(bound) * int64(r.next(31))) >> 31)
	}
	var bits, val int32
	for {
		bits = r.next(31)
		val = bits % bound
		// reject the incomplete last bucket; the sum overflows to negative there
		if bits-val+(bound-1) >= 0 {
			return int(val)
		}
	}
}

// Selector maps logical indexes to words for a fixed seed.
type Selector struct {
	seed int64
}

func NewSelector(seed int64) Selector {
	return Selector{seed: seed}
}

// Seed returns the seed the selector orders pools with.
func (s Selector) Seed() int64 {
	return s.seed
}

// Shuffle returns a copy of words in the order given by the selector's seed.
// The same seed and input order always give the same output.
func (s Selector) Shuffle(words []string) []string {
	out := slices.Clone(words)
	rnd := NewRandom(s.seed)
	for i := len(out); i > 1; i-- {
		j := rnd.IntN(i)
		out[i-1], out[j] = out[j], out[i-1]
	}
	return out
}

// WordForIndex shuffles pool and returns the word for the 1-based index.
func (s Selector) WordForIndex(pool []string, index int) (string, error) {
	return WordAt(s.Shuffle(pool), index)
}

// ResolveIndex maps a 1-based logical index onto [0, size).
// Indexes past the end wrap around, so size+1 resolves like 1.
func ResolveIndex(index, size int) int {
	r := (index - 1) % size
	if r < 0 {
		r += size
	}
	return r
}

// WordAt returns the word at the 1-based logical index of an already ordered pool.
func WordAt(pool []string, index int) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[ResolveIndex(index, len(pool))], nil
}

// Tier selects one side of a partitioned pool.
type Tier int

const (
	Lower Tier = iota // indexes below the boundary
	Upper             // indexes from the boundary on
)

func (t Tier) String() string {
	if t == Upper {
		return "upper"
	}
	return "lower"
}

// Partition splits shuffled pools at fixed per-length boundaries
// so two game modes sharing a bucket never draw the same word.
type Partition struct {
	Boundaries map[int]int
}

// DefaultPartition splits the buckets shared by the fixed-length difficulties and the journey.
// The boundaries are part of the save format: changing them moves players to other words.
var DefaultPartition = Partition{
	Boundaries: map[int]int{
		4: 10,
		5: 10,
		6: 10,
	},
}

// Pool returns the tier's share of an already shuffled pool of the given length.
// Lengths without a boundary are not partitioned.
func (p Partition) Pool(shuffled []string, length int, tier Tier) ([]string, error) {
	boundary, ok := p.Boundaries[length]
	if !ok {
		return shuffled, nil
	}
	if len(shuffled) <= boundary {
		return nil, ErrPoolTooSmall
	}
	if tier == Upper {
		return shuffled[boundary:], nil
	}
	return shuffled[:boundary], nil
}

// DateSeed encodes a calendar date as yyyymmdd.
// Plain arithmetic keeps the seed identical across platforms, locales and releases.
func DateSeed(date time.Time) int64 {
	y, m, d := date.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// DailyWord draws the word of the day from an ordered pool.
// The seed is the date seed plus the word length, so each length gets its own word.
func DailyWord(pool []string, date time.Time, length int) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	rnd := NewRandom(DateSeed(date) + int64(length))
	return pool[rnd.IntN(len(pool))], nil
}
