package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/pkg/telemetry"
)

// HistoryProvider yields historical chat messages in chronological order.
// Implementations filter messages created before the given lower bound.
type HistoryProvider interface {
	History(ctx context.Context, after time.Time, fn func(model.ChatMessage) error) error
}

// CatchupReport summarizes one catch-up scan.
type CatchupReport struct {
	MessagesScanned int           `json:"messages_scanned"`
	ResultsIngested int           `json:"results_ingested"`
	Players         int           `json:"players"`
	Duration        time.Duration `json:"duration"`
}

// Catchup consumes channel history from the configured minimum date
// onwards and recomputes every streak afterwards. It must complete
// before any stats snapshot or calendar render is produced. Per-message
// failures are logged and the scan continues.
func (c *Controller) Catchup(ctx context.Context, history HistoryProvider, dir model.MemberDirectory) (CatchupReport, error) {
	scanID := uuid.NewString()
	logger := c.logger.With(slog.String("scan_id", scanID))

	start := time.Now()
	report := CatchupReport{}

	after := c.numbering.Config().MinDate
	logger.Info("starting catch-up scan", slog.Time("after", after))

	err := history.History(ctx, after, func(msg model.ChatMessage) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.MessagesScanned++
		count, err := c.IngestMessage(ctx, msg, dir)
		if err != nil {
			// Directory-level failures abort the single message; the
			// scan resumes with the next one.
			logger.Warn("message skipped during catch-up",
				slog.String("message_id", msg.ID),
				slog.String("error", err.Error()),
			)
		}
		report.ResultsIngested += count
		return nil
	})
	if err != nil {
		return report, err
	}

	if err := c.RecomputeAll(ctx); err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	if count, err := c.storage.PlayerCount(ctx); err == nil {
		report.Players = count
	}
	telemetry.ObserveCatchup(report.Duration)

	logger.Info("catch-up complete",
		slog.Int("messages", report.MessagesScanned),
		slog.Int("results", report.ResultsIngested),
		slog.Int("players", report.Players),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}
