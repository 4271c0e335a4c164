// Package guess implements the number-guessing game: one secret number is
// drawn per run and the player guesses until they hit it.
package guess

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrInvalidGuess is returned by ParseGuess for input that is not an unsigned integer.
var ErrInvalidGuess = errors.New("guess is not an unsigned integer")

// Outcome is the result of comparing a guess with the secret number.
type Outcome int

const (
	TooSmall Outcome = iota
	TooBig
	Win
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "Too small!"
	case TooBig:
		return "Too big!"
	case Win:
		return "You win!"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Range is an inclusive interval of candidate secret numbers.
type Range struct {
	Min uint32
	Max uint32
}

// DefaultRange is [1, 100].
var DefaultRange = Range{Min: 1, Max: 100}

// Contains reports whether n lies within the range.
func (r Range) Contains(n uint32) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Min, r.Max)
}

// Game holds the secret number for a single run.
type Game struct {
	secret uint32
}

// NewGame returns a game with a fixed secret.
func NewGame(secret uint32) *Game {
	return &Game{secret: secret}
}

// Secret exposes the secret number, for logging after the game ends.
func (g *Game) Secret() uint32 {
	return g.secret
}

// Compare reports how guess relates to the secret number.
func (g *Game) Compare(guess uint32) Outcome {
	switch {
	case guess < g.secret:
		return TooSmall
	case guess > g.secret:
		return TooBig
	default:
		return Win
	}
}

// NewSecret draws one number uniformly from r using rng.
func NewSecret(rng *rand.Rand, r Range) uint32 {
	if r.Max <= r.Min {
		return r.Min
	}
	span := uint64(r.Max-r.Min) + 1
	return r.Min + uint32(rng.Uint64N(span))
}

// NewRand returns a generator for secret draws. A zero seed means OS-seeded.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// ParseGuess trims surrounding whitespace and parses an unsigned 32-bit
// integer. A single leading '+' is allowed.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
	return uint32(n), nil
}
