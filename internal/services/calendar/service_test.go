package calendar

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"

	"github.com/dailygrid/dailygrid/internal/dependencies/mocks"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/numbering"
	"github.com/dailygrid/dailygrid/internal/storage/memory"
)

type CalendarSuite struct {
	suite.Suite
	service   *Service
	storage   *memory.Storage
	numbering *numbering.Service
	ctx       context.Context
	end       time.Time
}

func TestCalendarSuite(t *testing.T) {
	suite.Run(t, new(CalendarSuite))
}

func (s *CalendarSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	s.numbering = numbering.New(numbering.Config{
		EpochDate:  time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC),
		BaseNumber: 0,
		MinDate:    time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC),
		DateFormat: "2006-01-02",
	}, clk)
	s.storage = memory.New()
	s.service = New(s.storage, s.numbering)
	s.ctx = context.Background()
	// Mid-July 2024; July 1st that year is a Monday.
	s.end = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
}

func (s *CalendarSuite) savePlayer(id model.PlayerID, name string, scoresByDay map[int]string) {
	p := model.NewPlayer(id, name)
	for day, token := range scoresByDay {
		score, err := model.ParseScore(token)
		s.Require().NoError(err)
		p.Insert(model.Result{
			PuzzleNumber: s.numbering.ForDate(2024, time.July, day, time.UTC),
			Score:        score,
			Timestamp:    time.Date(2024, time.July, day, 12, 0, 0, 0, time.UTC),
		})
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
}

func (s *CalendarSuite) render(opts RenderOptions) []PlayerCalendar {
	calendars, err := s.service.RenderRange(s.ctx, opts)
	s.Require().NoError(err)
	return calendars
}

func (s *CalendarSuite) TestSingleMonthStructure() {
	s.savePlayer("1", "Alice", map[int]string{1: "3", 2: "X"})

	calendars := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})
	s.Require().Len(calendars, 1)

	lines := calendars[0].Lines
	// Title, weekday header, five week rows, summary.
	s.Require().Len(lines, 8)
	s.Contains(lines[0], "July 2024")
	s.Equal("Mo Tu We Th Fr Sa Su", lines[1])
}

func (s *CalendarSuite) TestWeekRowCells() {
	s.savePlayer("1", "Alice", map[int]string{1: "3", 2: "X"})

	lines := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})[0].Lines

	// First week: played 3, failed X, then five missed days.
	s.Equal("3  X  ·  ·  ·  ·  · ", lines[2])
}

func (s *CalendarSuite) TestFutureDaysStayBlank() {
	s.savePlayer("1", "Alice", map[int]string{15: "2"})

	lines := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})[0].Lines

	// Third week starts at the end date; only that day renders.
	s.Equal("2", strings.TrimRight(lines[4], " "))
}

func (s *CalendarSuite) TestSummaryLine() {
	s.savePlayer("1", "Alice", map[int]string{1: "3", 2: "X"})

	lines := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})[0].Lines
	s.Equal("Played: 2/15 — Missed: 13", lines[len(lines)-1])
}

func (s *CalendarSuite) TestSquaresGlyphs() {
	s.savePlayer("1", "Alice", map[int]string{1: "1", 2: "X"})

	lines := s.render(RenderOptions{
		Months: 1, End: s.end, Location: time.UTC, Glyphs: GlyphSquares,
	})[0].Lines

	s.Contains(lines[2], "🟩")
	s.Contains(lines[2], "🟪")
	s.Contains(lines[2], "⬛")
}

func (s *CalendarSuite) TestMultipleMonthsSideBySide() {
	s.savePlayer("1", "Alice", map[int]string{1: "3"})

	lines := s.render(RenderOptions{Months: 2, End: s.end, Location: time.UTC})[0].Lines

	s.Contains(lines[0], "June 2024")
	s.Contains(lines[0], "July 2024")
	s.Equal("Mo Tu We Th Fr Sa Su  Mo Tu We Th Fr Sa Su", lines[1])
	// June needs fewer week rows than July; rows still align. Width is
	// measured in runes because the missed marker is multi-byte.
	for _, line := range lines[2 : len(lines)-1] {
		s.Equal(42, utf8.RuneCountInString(line))
	}
}

func (s *CalendarSuite) TestRowsFixedRuneWidth() {
	s.savePlayer("1", "Alice", map[int]string{1: "3", 2: "X"})

	lines := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})[0].Lines
	for _, line := range lines[2 : len(lines)-1] {
		s.Equal(blockWidth, utf8.RuneCountInString(line))
	}
}

func (s *CalendarSuite) TestMonthsClamped() {
	s.savePlayer("1", "Alice", map[int]string{1: "3"})

	lines := s.render(RenderOptions{Months: 0, End: s.end, Location: time.UTC})[0].Lines
	s.Contains(lines[0], "July 2024")
	s.NotContains(lines[0], "June")
}

func (s *CalendarSuite) TestOnePlayerCalendarPerStoredPlayer() {
	s.savePlayer("1", "Alice", map[int]string{1: "3"})
	s.savePlayer("2", "Bob", nil)

	calendars := s.render(RenderOptions{Months: 1, End: s.end, Location: time.UTC})
	s.Require().Len(calendars, 2)
	s.Equal("Alice", calendars[0].DisplayName)
	s.Equal("Bob", calendars[1].DisplayName)
}

func (s *CalendarSuite) TestGlyphModeParsing() {
	s.Equal(GlyphASCII, ParseGlyphMode(""))
	s.Equal(GlyphASCII, ParseGlyphMode("ascii"))
	s.Equal(GlyphSquares, ParseGlyphMode("squares"))
	s.Equal(GlyphSquares, ParseGlyphMode("SQUARES"))
	s.Equal(GlyphSquares, ParseGlyphMode("emoji"))
	s.Equal(GlyphASCII, ParseGlyphMode("nonsense"))
}
