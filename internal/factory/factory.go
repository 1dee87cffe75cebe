package factory

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/dependencies/clock"
	"github.com/dailygrid/dailygrid/internal/directory"
	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/game/wordle"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/calendar"
	"github.com/dailygrid/dailygrid/internal/services/ingest"
	"github.com/dailygrid/dailygrid/internal/services/numbering"
	"github.com/dailygrid/dailygrid/internal/services/resolver"
	"github.com/dailygrid/dailygrid/internal/services/stats"
	"github.com/dailygrid/dailygrid/internal/storage"
	"github.com/dailygrid/dailygrid/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	Config *config.Config

	// Storage
	Storage storage.Store

	// External dependencies
	Clock     clock.Clock
	Directory model.MemberDirectory
	Location  *time.Location

	// Services
	NumberingService *numbering.Service
	ResolverService  *resolver.Service
	StatsService     *stats.Service
	CalendarService  *calendar.Service
	IngestController *ingest.Controller
	Puzzle           game.PuzzleType
}

// New creates a new application with all dependencies wired
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	numberingCfg, err := numbering.ConfigFromApp(cfg.Numbering)
	if err != nil {
		return nil, fmt.Errorf("building numbering config: %w", err)
	}

	store := memory.New()
	clk := clock.New()
	dir := directory.NewStatic(cfg.Roster)

	return newWithDependencies(cfg, store, clk, dir, loc, numberingCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	cfg *config.Config,
	store storage.Store,
	clk clock.Clock,
	dir model.MemberDirectory,
	loc *time.Location,
	numberingCfg numbering.Config,
	logger *slog.Logger,
) *App {
	numberingService := numbering.New(numberingCfg, clk)
	resolverService := resolver.New(logger)
	puzzle := wordle.New()
	statsService := stats.New(store, cfg.MaxLeaderboard)
	calendarService := calendar.New(store, numberingService)
	ingestController := ingest.NewController(
		store, numberingService, resolverService, puzzle, loc, logger,
	)

	return &App{
		Config:           cfg,
		Storage:          store,
		Clock:            clk,
		Directory:        dir,
		Location:         loc,
		NumberingService: numberingService,
		ResolverService:  resolverService,
		StatsService:     statsService,
		CalendarService:  calendarService,
		IngestController: ingestController,
		Puzzle:           puzzle,
	}
}
