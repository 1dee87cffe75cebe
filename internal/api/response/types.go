package response

import (
	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/calendar"
	"github.com/dailygrid/dailygrid/internal/services/stats"
)

// Ingest reports how many results a message produced.
type Ingest struct {
	ResultsIngested int `json:"results_ingested"`
}

// Stats combines the structured snapshot with the puzzle type's
// rendered summary lines.
type Stats struct {
	Snapshot stats.Snapshot `json:"snapshot"`
	Summary  game.Summary   `json:"summary"`
}

// Calendar is the rendered calendar output for all players.
type Calendar struct {
	Players []calendar.PlayerCalendar `json:"players"`
	// Blocks is the chunked, transport-sized text form.
	Blocks []string `json:"blocks"`
}

// Player is the API view of a roster entry.
type Player struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	TotalGames    int    `json:"total_games"`
	CurrentStreak int    `json:"current_streak"`
	LastPlayed    *int   `json:"last_played,omitempty"`
}

// PlayerFromModel converts a model player.
func PlayerFromModel(p *model.Player) Player {
	out := Player{
		ID:            string(p.ID),
		DisplayName:   p.DisplayName,
		TotalGames:    p.TotalGames,
		CurrentStreak: p.CurrentStreak,
	}
	if p.HasPlayed {
		last := p.LastPlayed
		out.LastPlayed = &last
	}
	return out
}
