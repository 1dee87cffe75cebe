// Package numbering maps timestamps to canonical daily puzzle numbers.
package numbering

import (
	"time"

	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/dependencies/clock"
)

// Config holds the puzzle numbering parameters. It is passed explicitly
// at construction; there is no process-wide default.
type Config struct {
	// EpochDate is the local calendar date that maps to BaseNumber.
	EpochDate time.Time
	// BaseNumber is the puzzle number at EpochDate.
	BaseNumber int
	// MinDate is the lower bound for historical catch-up scans.
	MinDate time.Time
	// DateFormat is the layout used at the ingestion boundary.
	DateFormat string
}

// ConfigFromApp converts the process configuration into a numbering Config.
func ConfigFromApp(n config.Numbering) (Config, error) {
	epoch, err := time.Parse(n.DateFormat, n.EpochDate)
	if err != nil {
		return Config{}, err
	}
	minDate, err := time.Parse(n.DateFormat, n.MinDate)
	if err != nil {
		return Config{}, err
	}
	return Config{
		EpochDate:  epoch,
		BaseNumber: n.BaseNumber,
		MinDate:    minDate,
		DateFormat: n.DateFormat,
	}, nil
}

// Service converts timestamps to puzzle numbers.
type Service struct {
	config Config
	clock  clock.Clock
}

// New creates a numbering service.
func New(cfg Config, clk clock.Clock) *Service {
	return &Service{
		config: cfg,
		clock:  clk,
	}
}

// Config returns the numbering configuration.
func (s *Service) Config() Config {
	return s.config
}

// ForTime maps an instant to its puzzle number in the given location.
// When loc is nil the instant's own location is used, so naive-local
// timestamps are treated as already local. Numbers are monotonic
// non-decreasing in time and clamp to BaseNumber at or before the epoch.
func (s *Service) ForTime(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return s.forDate(y, m, d)
}

// ForDate maps a calendar date to its puzzle number. The mapping is
// anchored at local noon so timezone boundaries cannot shift the date.
func (s *Service) ForDate(year int, month time.Month, day int, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	y, m, d := noon.Date()
	return s.forDate(y, m, d)
}

// Today returns the puzzle number for the current wall-clock date.
func (s *Service) Today(loc *time.Location) int {
	return s.ForTime(s.clock.Now(), loc)
}

func (s *Service) forDate(year int, month time.Month, day int) int {
	localDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	ey, em, ed := s.config.EpochDate.Date()
	epoch := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)

	days := int(localDate.Sub(epoch).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return s.config.BaseNumber + days
}
