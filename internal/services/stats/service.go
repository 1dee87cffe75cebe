// Package stats computes per-player and global aggregates over the
// roster: games played, streaks, special-score counts, rolling averages
// and a ranked leaderboard.
package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/storage"
)

// PlayerStats holds one player's aggregates.
type PlayerStats struct {
	PlayerID      model.PlayerID `json:"player_id"`
	DisplayName   string         `json:"display_name"`
	GamesPlayed   int            `json:"games_played"`
	CurrentStreak int            `json:"current_streak"`
	BestStreak    int            `json:"best_streak"`
	Ones          int            `json:"ones"`
	Failures      int            `json:"failures"`

	// Averages over numeric scores only; nil when the window holds none.
	AvgAll *float64 `json:"avg_all"`
	Avg30  *float64 `json:"avg_30"`
	Avg7   *float64 `json:"avg_7"`
}

// Totals holds the global aggregates across all players.
type Totals struct {
	Games    int `json:"games"`
	Ones     int `json:"ones"`
	Failures int `json:"failures"`
	Players  int `json:"players"`
}

// Snapshot is one consistent view of the roster's statistics.
type Snapshot struct {
	// Leaderboard is the ranked top-N slice.
	Leaderboard []PlayerStats `json:"leaderboard"`
	// Players is the full ranked list.
	Players []PlayerStats `json:"players"`
	Totals  Totals        `json:"totals"`
	AsOf    time.Time     `json:"as_of"`
}

// Service aggregates statistics from the roster.
type Service struct {
	storage storage.Store
	topN    int
}

// New creates a stats service. topN caps the leaderboard length.
func New(store storage.Store, topN int) *Service {
	if topN <= 0 {
		topN = 10
	}
	return &Service{
		storage: store,
		topN:    topN,
	}
}

// Snapshot computes aggregates for every player as of the given instant.
// Trailing windows compare each result's own timestamp against asOf.
// Ranking is by games played descending, ties broken by best streak
// descending.
func (s *Service) Snapshot(ctx context.Context, asOf time.Time) (Snapshot, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	cutoff30 := asOf.AddDate(0, 0, -30)
	cutoff7 := asOf.AddDate(0, 0, -7)

	snapshot := Snapshot{
		Players: make([]PlayerStats, 0, len(players)),
		AsOf:    asOf,
	}

	for _, p := range players {
		ps := PlayerStats{
			PlayerID:      p.ID,
			DisplayName:   p.DisplayName,
			GamesPlayed:   p.TotalGames,
			CurrentStreak: p.CurrentStreak,
			BestStreak:    p.LongestStreak(nil),
		}

		var all, last30, last7 []int
		for _, r := range p.Timeline {
			value, numeric := r.Score.Value()
			if !numeric {
				ps.Failures++
				continue
			}
			if value == 1 {
				ps.Ones++
			}
			all = append(all, value)
			if !r.Timestamp.Before(cutoff30) {
				last30 = append(last30, value)
			}
			if !r.Timestamp.Before(cutoff7) {
				last7 = append(last7, value)
			}
		}
		ps.AvgAll = average(all)
		ps.Avg30 = average(last30)
		ps.Avg7 = average(last7)

		snapshot.Totals.Games += ps.GamesPlayed
		snapshot.Totals.Ones += ps.Ones
		snapshot.Totals.Failures += ps.Failures

		snapshot.Players = append(snapshot.Players, ps)
	}
	snapshot.Totals.Players = len(snapshot.Players)

	sort.SliceStable(snapshot.Players, func(i, j int) bool {
		a, b := snapshot.Players[i], snapshot.Players[j]
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed > b.GamesPlayed
		}
		return a.BestStreak > b.BestStreak
	})

	top := s.topN
	if top > len(snapshot.Players) {
		top = len(snapshot.Players)
	}
	snapshot.Leaderboard = snapshot.Players[:top]

	return snapshot, nil
}

// average returns the mean rounded to two decimals, or nil for no input.
func average(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := math.Round(float64(sum)/float64(len(values))*100) / 100
	return &avg
}
