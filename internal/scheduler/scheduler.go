// Package scheduler runs a job once per day at a fixed local time.
// It backs the optional nightly streak recompute.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/dailygrid/dailygrid/internal/dependencies/clock"
)

// Daily runs Job every day at Hour:Minute in Location.
type Daily struct {
	Hour     int
	Minute   int
	Location *time.Location
	Job      func(ctx context.Context) error
	Clock    clock.Clock
	Logger   *slog.Logger
}

// NextRun returns the first occurrence of Hour:Minute strictly after now.
func (d *Daily) NextRun(now time.Time) time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), d.Hour, d.Minute, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks, firing the job at each daily occurrence until the context
// is cancelled. Job failures are logged; the loop keeps going.
func (d *Daily) Run(ctx context.Context) {
	for {
		next := d.NextRun(d.Clock.Now())
		wait := time.Until(next)
		d.Logger.Info("daily job scheduled",
			slog.Time("next_run", next),
			slog.Duration("wait", wait),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := d.Job(ctx); err != nil {
			d.Logger.Error("daily job failed", slog.String("error", err.Error()))
		}
	}
}
