// Package calendar renders per-player month grids of daily scores as
// fixed-width text, several consecutive months side by side.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/numbering"
	"github.com/dailygrid/dailygrid/internal/storage"
)

// GlyphMode selects the cell rendering strategy for one render call.
type GlyphMode int

const (
	// GlyphASCII renders monospaced score tokens; reliable alignment.
	GlyphASCII GlyphMode = iota
	// GlyphSquares renders colored emoji squares; may misalign on some
	// clients.
	GlyphSquares
)

// ParseGlyphMode maps a mode name to a GlyphMode, defaulting to ASCII.
func ParseGlyphMode(s string) GlyphMode {
	if strings.EqualFold(s, "squares") || strings.EqualFold(s, "emoji") {
		return GlyphSquares
	}
	return GlyphASCII
}

// RenderOptions configure one render pass.
type RenderOptions struct {
	// Months is the number of trailing months to render, clamped to 1..12.
	Months int
	// End anchors the range: the last rendered month contains End, and
	// dates strictly after End's local date render blank.
	End time.Time
	// Location is the timezone for date arithmetic; nil means UTC.
	Location *time.Location
	// Glyphs selects ASCII tokens or emoji squares.
	Glyphs GlyphMode
}

// PlayerCalendar is the rendered grid for one player.
type PlayerCalendar struct {
	PlayerID    model.PlayerID `json:"player_id"`
	DisplayName string         `json:"display_name"`
	Lines       []string       `json:"lines"`
}

// weekdayHeader is one week row's worth of column labels.
const weekdayHeader = "Mo Tu We Th Fr Sa Su"

// blockWidth is the rendered width of one month block.
var blockWidth = len(weekdayHeader)

// Service renders score calendars from the roster.
type Service struct {
	storage   storage.Store
	numbering *numbering.Service
}

// New creates a calendar service.
func New(store storage.Store, numberingService *numbering.Service) *Service {
	return &Service{
		storage:   store,
		numbering: numberingService,
	}
}

// month identifies one calendar month.
type month struct {
	year int
	mon  time.Month
}

// RenderRange renders the trailing months ending at opts.End for every
// player. Output lines are fixed width so the transport boundary can
// chunk on line breaks without tearing a row.
func (s *Service) RenderRange(ctx context.Context, opts RenderOptions) ([]PlayerCalendar, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	n := opts.Months
	if n < 1 {
		n = 1
	}
	if n > 12 {
		n = 12
	}

	end := opts.End.In(loc)
	endY, endM, endD := end.Date()
	endDate := time.Date(endY, endM, endD, 0, 0, 0, 0, loc)

	// Months oldest first, ending at the month containing end.
	months := make([]month, 0, n)
	for d := n - 1; d >= 0; d-- {
		idx := endY*12 + int(endM) - 1 - d
		months = append(months, month{year: idx / 12, mon: time.Month(idx%12 + 1)})
	}

	// Week grids and date -> puzzle number maps per month. Numbers are
	// anchored at local noon so a timezone boundary cannot drift the date.
	weeksByMonth := make([][][]time.Time, len(months))
	numbersByMonth := make([]map[time.Time]int, len(months))
	maxWeeks := 0
	for i, m := range months {
		weeks := monthWeeks(m.year, m.mon, loc)
		weeksByMonth[i] = weeks
		if len(weeks) > maxWeeks {
			maxWeeks = len(weeks)
		}
		nums := make(map[time.Time]int)
		for _, week := range weeks {
			for _, day := range week {
				if day.Month() != m.mon {
					continue
				}
				nums[day] = s.numbering.ForDate(day.Year(), day.Month(), day.Day(), loc)
			}
		}
		numbersByMonth[i] = nums
	}

	titleLine := s.titlesLine(months)
	headerLine := strings.Join(repeat(weekdayHeader, len(months)), "  ")

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	calendars := make([]PlayerCalendar, 0, len(players))
	for _, p := range players {
		scores := p.ScoresByNumber()

		lines := make([]string, 0, maxWeeks+3)
		lines = append(lines, titleLine, headerLine)

		for wi := 0; wi < maxWeeks; wi++ {
			blocks := make([]string, 0, len(months))
			for mi, m := range months {
				weeks := weeksByMonth[mi]
				if wi >= len(weeks) {
					// Shorter months pad so all months align row for row.
					blocks = append(blocks, strings.Repeat(" ", blockWidth))
					continue
				}
				blocks = append(blocks, s.weekRow(weeks[wi], m, endDate, numbersByMonth[mi], scores, opts.Glyphs))
			}
			lines = append(lines, strings.Join(blocks, "  "))
		}

		lines = append(lines, summaryLine(numbersByMonth, scores, endDate))

		calendars = append(calendars, PlayerCalendar{
			PlayerID:    p.ID,
			DisplayName: p.DisplayName,
			Lines:       lines,
		})
	}
	return calendars, nil
}

// weekRow renders one week's seven cells for one month block.
func (s *Service) weekRow(week []time.Time, m month, endDate time.Time, numbers map[time.Time]int, scores map[int]model.Score, glyphs GlyphMode) string {
	cells := make([]string, 0, 7)
	for _, day := range week {
		switch {
		case day.Month() != m.mon:
			cells = append(cells, blankCell(glyphs)) // overflow day
		case day.After(endDate):
			cells = append(cells, blankCell(glyphs)) // future day stays blank
		default:
			score, played := scores[numbers[day]]
			cells = append(cells, scoreCell(score, played, glyphs))
		}
	}
	row := strings.Join(cells, " ")
	// Width is counted in runes: the missed marker is multi-byte.
	if pad := blockWidth - utf8.RuneCountInString(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row
}

func blankCell(glyphs GlyphMode) string {
	return "  "
}

// scoreCell renders a played or missed in-month past day.
func scoreCell(score model.Score, played bool, glyphs GlyphMode) string {
	if glyphs == GlyphSquares {
		if !played {
			return "⬛"
		}
		return squareFor(score)
	}
	if !played {
		return "· "
	}
	token := score.Token()
	if len(token) < 2 {
		token += " "
	}
	return token
}

// squareFor maps scores to unique color squares.
func squareFor(score model.Score) string {
	value, numeric := score.Value()
	if !numeric {
		return "🟪"
	}
	switch value {
	case 1:
		return "🟩"
	case 2:
		return "🟦"
	case 3:
		return "🟨"
	case 4:
		return "🟧"
	case 5:
		return "🟥"
	case 6:
		return "🟫"
	default:
		return "⬛"
	}
}

// titlesLine centers each month's label over its block.
func (s *Service) titlesLine(months []month) string {
	titles := make([]string, 0, len(months))
	for _, m := range months {
		titles = append(titles, center(fmt.Sprintf("%s %d", m.mon.String(), m.year), blockWidth))
	}
	return strings.Join(titles, "  ")
}

// summaryLine reports played versus elapsed in-range days, ignoring
// days after the end date.
func summaryLine(numbersByMonth []map[time.Time]int, scores map[int]model.Score, endDate time.Time) string {
	total := 0
	played := 0
	for _, nums := range numbersByMonth {
		for day, n := range nums {
			if day.After(endDate) {
				continue
			}
			total++
			if _, ok := scores[n]; ok {
				played++
			}
		}
	}
	return fmt.Sprintf("Played: %d/%d — Missed: %d", played, total, total-played)
}

// monthWeeks builds the Monday-first week grid spanning a month,
// including lead and trail days of the adjacent months.
func monthWeeks(year int, mon time.Month, loc *time.Location) [][]time.Time {
	first := time.Date(year, mon, 1, 0, 0, 0, 0, loc)
	// Back up to the Monday on or before the 1st.
	lead := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -lead)

	var weeks [][]time.Time
	for {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = cursor
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
		if cursor.Month() != mon && cursor.Year()*12+int(cursor.Month()) > year*12+int(mon) {
			break
		}
	}
	return weeks
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
