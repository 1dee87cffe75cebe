// Package ingest owns the result pipeline: parsing messages through the
// puzzle type, resolving handles, storing results with deduplication,
// and maintaining streaks.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/numbering"
	"github.com/dailygrid/dailygrid/internal/services/resolver"
	"github.com/dailygrid/dailygrid/internal/storage"
	"github.com/dailygrid/dailygrid/pkg/telemetry"
)

// Outcome classifies a single result ingestion.
type Outcome int

const (
	// OutcomeAccepted means the result was appended to the timeline.
	OutcomeAccepted Outcome = iota
	// OutcomeDuplicate means the puzzle number was already recorded;
	// re-ingestion is a silent no-op.
	OutcomeDuplicate
	// OutcomeFuture means the puzzle number exceeds today's and the
	// result was rejected.
	OutcomeFuture
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeFuture:
		return "future"
	default:
		return "unknown"
	}
}

// Controller runs the ingestion pipeline. All roster mutation flows
// through it; a single mutex serializes ingestion and streak
// recomputation so a read-modify-write never loses an update.
type Controller struct {
	storage   storage.Store
	numbering *numbering.Service
	resolver  *resolver.Service
	puzzle    game.PuzzleType
	location  *time.Location
	logger    *slog.Logger

	mu sync.Mutex
}

// NewController creates an ingestion controller.
func NewController(
	store storage.Store,
	numberingService *numbering.Service,
	resolverService *resolver.Service,
	puzzle game.PuzzleType,
	location *time.Location,
	logger *slog.Logger,
) *Controller {
	if location == nil {
		location = time.Local
	}
	return &Controller{
		storage:   store,
		numbering: numberingService,
		resolver:  resolverService,
		puzzle:    puzzle,
		location:  location,
		logger:    logger,
	}
}

// Today returns today's puzzle number in the controller's location.
func (c *Controller) Today() int {
	return c.numbering.Today(c.location)
}

// IngestMessage parses one chat message and stores every result it can
// attribute. Per-candidate failures (unknown or ambiguous handles,
// future numbers) are logged and skipped; only a directory enumeration
// failure aborts the message. Returns the number of results stored.
func (c *Controller) IngestMessage(ctx context.Context, msg model.ChatMessage, dir model.MemberDirectory) (int, error) {
	telemetry.CountMessage()

	candidates := c.puzzle.ParseMessage(msg)
	if len(candidates) == 0 {
		return 0, nil
	}

	// Map the message timestamp to a puzzle number, capped at today's
	// so clock skew on the message cannot produce a future number.
	number := c.numbering.ForTime(msg.CreatedAt, c.location)
	if today := c.Today(); number > today {
		c.logger.Debug("capping message puzzle number at today",
			slog.Int("number", number),
			slog.Int("today", today),
		)
		number = today
	}

	ingested := 0
	for _, cand := range candidates {
		playerID, err := c.resolver.Resolve(ctx, cand.HandleToken, dir)
		if err != nil {
			if errors.Is(err, model.ErrDirectoryUnavailable) {
				return ingested, err
			}
			telemetry.CountUnresolved()
			c.logger.Warn("dropping unresolved handle",
				slog.String("token", cand.HandleToken),
				slog.String("message_id", msg.ID),
				slog.String("error", err.Error()),
			)
			continue
		}

		result := model.Result{
			PuzzleNumber: number,
			Score:        cand.Score,
			Timestamp:    msg.CreatedAt,
			Meta:         map[string]any{"total": cand.TotalAllowed},
		}

		outcome, err := c.AddResult(ctx, playerID, dir, result)
		if err != nil {
			c.logger.Error("failed to store result",
				slog.String("player_id", string(playerID)),
				slog.Int("number", number),
				slog.String("error", err.Error()),
			)
			continue
		}
		if outcome == OutcomeAccepted {
			ingested++
		}
	}

	if ingested > 0 {
		c.logger.Info("ingested results",
			slog.String("message_id", msg.ID),
			slog.Int("count", ingested),
		)
	}
	return ingested, nil
}

// AddResult stores one result for a player, creating the player on first
// attribution. Future numbers are rejected, duplicates are silently
// accepted as no-ops, and a result for today's number updates the
// current streak incrementally.
func (c *Controller) AddResult(ctx context.Context, playerID model.PlayerID, dir model.MemberDirectory, result model.Result) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.Today()
	if result.PuzzleNumber > today {
		telemetry.CountFuture()
		c.logger.Warn("rejecting future result",
			slog.String("player_id", string(playerID)),
			slog.Int("number", result.PuzzleNumber),
			slog.Int("today", today),
		)
		return OutcomeFuture, nil
	}

	player, err := c.getOrCreatePlayer(ctx, playerID, dir)
	if err != nil {
		return 0, err
	}

	if player.HasNumber(result.PuzzleNumber) {
		telemetry.CountDuplicate()
		c.logger.Debug("duplicate result ignored",
			slog.String("player_id", string(playerID)),
			slog.Int("number", result.PuzzleNumber),
		)
		return OutcomeDuplicate, nil
	}

	player.Insert(result)

	// Only a result for today's puzzle moves the incremental streak;
	// bulk historical ingestion requires RecomputeAll afterwards.
	if result.PuzzleNumber == today {
		if result.Score.IsFailure() {
			player.CurrentStreak = 0
		} else {
			player.CurrentStreak++
		}
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return 0, err
	}

	telemetry.CountAccepted()
	if count, err := c.storage.PlayerCount(ctx); err == nil {
		telemetry.SetRosterSize(count)
	}
	return OutcomeAccepted, nil
}

// getOrCreatePlayer looks the player up, synthesizing a placeholder
// record when the directory cannot produce the member. Unresolved
// membership is never fatal.
func (c *Controller) getOrCreatePlayer(ctx context.Context, playerID model.PlayerID, dir model.MemberDirectory) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	member := model.NewPlaceholderMember(playerID)
	if dir != nil {
		if m, ok := dir.Member(ctx, playerID); ok {
			member = m
		}
	}
	player = model.NewPlayer(playerID, member.DisplayName)
	if member.Placeholder {
		c.logger.Debug("created placeholder player",
			slog.String("player_id", string(playerID)),
		)
	}
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// RecomputeStreak fully recomputes a player's current streak by walking
// the timeline backwards from today's number. An unplayed today does not
// break the streak.
func (c *Controller) RecomputeStreak(ctx context.Context, playerID model.PlayerID) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}

	today := c.Today()
	check := today
	streak := 0

	last, ok := player.LastResult()
	if !ok {
		player.CurrentStreak = 0
		return 0, c.storage.SavePlayer(ctx, player)
	}

	if last.PuzzleNumber == check && !last.Score.IsFailure() {
		streak++
		check--
	} else {
		check--
	}

	for i := len(player.Timeline) - 1; i >= 0; i-- {
		r := player.Timeline[i]
		if r.PuzzleNumber == today {
			// Already handled above.
			continue
		}
		if r.PuzzleNumber == check && !r.Score.IsFailure() {
			check--
			streak++
			continue
		}
		break
	}

	player.CurrentStreak = streak
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return 0, err
	}
	return streak, nil
}

// RecomputeAll recomputes every player's current streak. It must run
// after bulk historical ingestion and before any stats are served.
func (c *Controller) RecomputeAll(ctx context.Context) error {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		if _, err := c.RecomputeStreak(ctx, p.ID); err != nil {
			return fmt.Errorf("recompute streak for %s: %w", p.ID, err)
		}
	}
	return nil
}

// LongestStreak returns the longest run of consecutive winning puzzle
// numbers anywhere in the player's history. A nil predicate counts any
// numeric score as a win.
func (c *Controller) LongestStreak(ctx context.Context, playerID model.PlayerID, win model.WinPredicate) (int, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return player.LongestStreak(win), nil
}
