package model

import "sort"

// PlayerID uniquely identifies a player across the system.
// It is the chat platform's stable user identifier.
type PlayerID string

// Player holds one player's timeline of results and derived counters.
// The timeline is kept sorted ascending by puzzle number and unique per
// number; mutation goes through the ingest controller only.
type Player struct {
	ID          PlayerID
	DisplayName string
	Timeline    []Result

	// Derived fields, maintained at ingestion time or by a full recompute.
	CurrentStreak int
	TotalGames    int
	LastPlayed    int
	HasPlayed     bool
}

// NewPlayer creates a player with an empty timeline.
func NewPlayer(id PlayerID, displayName string) *Player {
	return &Player{
		ID:          id,
		DisplayName: displayName,
	}
}

// HasNumber reports whether a result for the given puzzle number is recorded.
func (p *Player) HasNumber(number int) bool {
	i := sort.Search(len(p.Timeline), func(i int) bool {
		return p.Timeline[i].PuzzleNumber >= number
	})
	return i < len(p.Timeline) && p.Timeline[i].PuzzleNumber == number
}

// LastResult returns the most recent result, if any.
func (p *Player) LastResult() (Result, bool) {
	if len(p.Timeline) == 0 {
		return Result{}, false
	}
	return p.Timeline[len(p.Timeline)-1], true
}

// Insert adds a result keeping the timeline sorted ascending by puzzle
// number. The caller is responsible for duplicate and future-number checks.
func (p *Player) Insert(result Result) {
	i := sort.Search(len(p.Timeline), func(i int) bool {
		return p.Timeline[i].PuzzleNumber >= result.PuzzleNumber
	})
	p.Timeline = append(p.Timeline, Result{})
	copy(p.Timeline[i+1:], p.Timeline[i:])
	p.Timeline[i] = result

	p.TotalGames = len(p.Timeline)
	if !p.HasPlayed || result.PuzzleNumber > p.LastPlayed {
		p.LastPlayed = result.PuzzleNumber
		p.HasPlayed = true
	}
}

// Clone returns a deep copy that can be mutated without affecting the
// original. The store hands out clones so readers never alias the
// writer's timeline.
func (p *Player) Clone() *Player {
	cp := *p
	if p.Timeline != nil {
		cp.Timeline = make([]Result, len(p.Timeline))
		for i, r := range p.Timeline {
			cp.Timeline[i] = r.Clone()
		}
	}
	return &cp
}

// ScoresByNumber builds a puzzle number -> score lookup over the timeline.
func (p *Player) ScoresByNumber() map[int]Score {
	m := make(map[int]Score, len(p.Timeline))
	for _, r := range p.Timeline {
		m[r.PuzzleNumber] = r.Score
	}
	return m
}
