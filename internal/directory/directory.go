// Package directory provides the in-process member directory backing
// handle resolution. It stands in for the chat platform's guild member
// listing at the ingestion boundary.
package directory

import (
	"context"
	"sync"

	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/model"
)

// Static is a fixed member directory seeded from configuration.
type Static struct {
	mu      sync.RWMutex
	members []model.Member
	byID    map[model.PlayerID]model.Member
}

// NewStatic creates a directory from roster entries.
func NewStatic(entries []config.RosterEntry) *Static {
	s := &Static{
		byID: make(map[model.PlayerID]model.Member, len(entries)),
	}
	for _, e := range entries {
		m := model.Member{
			ID:          model.PlayerID(e.ID),
			Username:    e.Username,
			DisplayName: e.DisplayName,
			GlobalName:  e.GlobalName,
		}
		if m.DisplayName == "" {
			m.DisplayName = m.Username
		}
		s.members = append(s.members, m)
		s.byID[m.ID] = m
	}
	return s
}

var _ model.MemberDirectory = (*Static)(nil)

// Members enumerates all seeded members.
func (s *Static) Members(ctx context.Context) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

// Member looks up a single member by id.
func (s *Static) Member(ctx context.Context, id model.PlayerID) (model.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[id]
	return m, ok
}
