// Package game defines the puzzle-type capability. A puzzle type knows
// how to recognize its result lines in raw chat text and how to present
// an aggregated stats snapshot. Exactly one implementation is selected
// at startup; there is no per-message dispatch.
package game

import (
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/stats"
)

// Candidate is one potential result extracted from a message: a score
// and total shared by every handle on the same line, paired with a
// single unresolved handle token.
type Candidate struct {
	Score        model.Score
	TotalAllowed int
	HandleToken  string
}

// Summary is a renderable stats presentation produced by a puzzle type.
type Summary struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// PuzzleType is the closed capability a daily puzzle implementation
// provides to the engine.
type PuzzleType interface {
	// ParseMessage scans raw message text for result-announcement lines
	// and returns one candidate per handle token found. A message with
	// no matching lines returns an empty slice; this is a best-effort
	// extraction, never an error.
	ParseMessage(msg model.ChatMessage) []Candidate

	// BuildSnapshot renders an aggregated snapshot into summary lines
	// suitable for delivery or console inspection.
	BuildSnapshot(snapshot stats.Snapshot) Summary
}
