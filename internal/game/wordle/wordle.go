// Package wordle implements the reference puzzle type: summary lines in
// the shape "👑 3/6: @tim" or "X/6: @bob @joe" as posted by result bots.
package wordle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/stats"
)

// linePattern matches one result-announcement line: an optional leading
// prefix token (often a crown emoji), score/total, a colon, then one or
// more handle tokens. Handle tokens are direct mentions (<@id>, <@!id>)
// or free-text names (@name).
var linePattern = regexp.MustCompile(
	`(?m)^\s*(?:\S+\s+)?` +
		`(\d+|X)\s*/\s*(\d+)\s*` +
		`:\s*((?:<@!?\d+>|@[A-Za-z0-9._-]+)` +
		`(?:\s+(?:<@!?\d+>|@[A-Za-z0-9._-]+))*)\s*$`,
)

// PuzzleType is the Wordle implementation of the game capability.
type PuzzleType struct{}

// New creates the Wordle puzzle type.
func New() *PuzzleType {
	return &PuzzleType{}
}

var _ game.PuzzleType = (*PuzzleType)(nil)

// ParseMessage extracts result candidates from raw message text.
// Non-matching lines are skipped silently.
func (p *PuzzleType) ParseMessage(msg model.ChatMessage) []game.Candidate {
	var candidates []game.Candidate
	for _, m := range linePattern.FindAllStringSubmatch(msg.Content, -1) {
		score, err := model.ParseScore(m[1])
		if err != nil {
			// The pattern only admits digits or X; a zero tries token
			// still fails numeric validation and drops the line.
			continue
		}
		total, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		for _, token := range strings.Fields(m[3]) {
			candidates = append(candidates, game.Candidate{
				Score:        score,
				TotalAllowed: total,
				HandleToken:  token,
			})
		}
	}
	return candidates
}

// BuildSnapshot renders the leaderboard and totals the way the stats
// channel expects them.
func (p *PuzzleType) BuildSnapshot(snapshot stats.Snapshot) game.Summary {
	lines := make([]string, 0, len(snapshot.Leaderboard)+2)

	if len(snapshot.Leaderboard) == 0 {
		lines = append(lines, "No data available yet.")
	}
	for i, ps := range snapshot.Leaderboard {
		lines = append(lines, fmt.Sprintf(
			"%d. %s — Games: %d, 1️⃣: %d, ❌: %d, Best Streak: %d | Avg (All/30d/7d): %s/%s/%s",
			i+1, ps.DisplayName, ps.GamesPlayed, ps.Ones, ps.Failures, ps.BestStreak,
			formatAvg(ps.AvgAll), formatAvg(ps.Avg30), formatAvg(ps.Avg7),
		))
	}

	lines = append(lines, fmt.Sprintf(
		"Totals — Games: %d • 1️⃣: %d • ❌: %d",
		snapshot.Totals.Games, snapshot.Totals.Ones, snapshot.Totals.Failures,
	))

	return game.Summary{
		Title: "Wordle Stats",
		Lines: lines,
	}
}

func formatAvg(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
