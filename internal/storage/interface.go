package storage

import (
	"context"

	"github.com/dailygrid/dailygrid/internal/model"
)

// Store defines the interface for roster state. State is process-lifetime
// only; the single implementation is the in-memory store.
type Store interface {
	// SavePlayer inserts or replaces a player record.
	SavePlayer(ctx context.Context, player *model.Player) error
	// GetPlayer retrieves a player by id.
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// ListPlayers returns every player in a stable order (by id).
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	// PlayerCount returns the roster size.
	PlayerCount(ctx context.Context) (int, error)
}
