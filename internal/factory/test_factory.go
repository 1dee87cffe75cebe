package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/dependencies/mocks"
	"github.com/dailygrid/dailygrid/internal/directory"
	"github.com/dailygrid/dailygrid/internal/services/numbering"
	"github.com/dailygrid/dailygrid/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The clock starts at noon UTC on 2024-07-01 and the numbering epoch is the
// standard one, so that date maps to puzzle number 1108.
func NewTestApp(roster ...config.RosterEntry) *TestApp {
	cfg := config.New()
	cfg.Roster = roster

	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC))
	dir := directory.NewStatic(roster)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	numberingCfg, err := numbering.ConfigFromApp(cfg.Numbering)
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(cfg, store, mockClock, dir, time.UTC, numberingCfg, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
