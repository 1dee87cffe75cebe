package model

import (
	"fmt"
	"strconv"
	"time"
)

// FailureToken is the score token players post when they run out of guesses.
const FailureToken = "X"

// Score is either a numeric guess count or the failure marker. The zero
// value is not valid; construct scores with NumericScore, FailedScore or
// ParseScore.
type Score struct {
	value  int
	failed bool
}

// NumericScore creates a score from a guess count.
func NumericScore(n int) (Score, error) {
	if n <= 0 {
		return Score{}, fmt.Errorf("%w: guess count %d must be positive", ErrInvalidScore, n)
	}
	return Score{value: n}, nil
}

// FailedScore creates the failure score.
func FailedScore() Score {
	return Score{failed: true}
}

// ParseScore parses a score token: a positive integer or FailureToken.
func ParseScore(token string) (Score, error) {
	if token == FailureToken {
		return FailedScore(), nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return Score{}, fmt.Errorf("%w: %q is not a number or %q", ErrInvalidScore, token, FailureToken)
	}
	return NumericScore(n)
}

// Value returns the numeric guess count. The second return is false for
// the failure score.
func (s Score) Value() (int, bool) {
	if s.failed {
		return 0, false
	}
	return s.value, true
}

// IsFailure reports whether this is the failure score.
func (s Score) IsFailure() bool {
	return s.failed
}

// Token renders the score back to its wire token.
func (s Score) Token() string {
	if s.failed {
		return FailureToken
	}
	return strconv.Itoa(s.value)
}

// Result is one recorded puzzle outcome on a player's timeline.
type Result struct {
	PuzzleNumber int
	Score        Score
	Timestamp    time.Time
	Meta         map[string]any
}

// Clone returns a copy whose Meta map is independent of the original.
func (r Result) Clone() Result {
	cp := r
	if r.Meta != nil {
		cp.Meta = make(map[string]any, len(r.Meta))
		for k, v := range r.Meta {
			cp.Meta[k] = v
		}
	}
	return cp
}
