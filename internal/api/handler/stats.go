package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dailygrid/dailygrid/internal/api/response"
	"github.com/dailygrid/dailygrid/internal/dependencies/clock"
	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/services/calendar"
	"github.com/dailygrid/dailygrid/internal/services/stats"
)

// StatsHandler handles stats and calendar endpoints
type StatsHandler struct {
	statsService    *stats.Service
	calendarService *calendar.Service
	puzzle          game.PuzzleType
	clock           clock.Clock
	location        *time.Location
	transportLimit  int
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(
	statsService *stats.Service,
	calendarService *calendar.Service,
	puzzle game.PuzzleType,
	clk clock.Clock,
	location *time.Location,
	transportLimit int,
) *StatsHandler {
	if location == nil {
		location = time.Local
	}
	return &StatsHandler{
		statsService:    statsService,
		calendarService: calendarService,
		puzzle:          puzzle,
		clock:           clk,
		location:        location,
		transportLimit:  transportLimit,
	}
}

// Stats handles GET /api/v1/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.statsService.Snapshot(r.Context(), h.clock.Now())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Stats{
		Snapshot: snapshot,
		Summary:  h.puzzle.BuildSnapshot(snapshot),
	})
}

// Calendar handles GET /api/v1/calendar
func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	months := 1
	if v := r.URL.Query().Get("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			WriteError(w, NewInvalidRequestError("months must be an integer between 1 and 12"))
			return
		}
		months = n
	}
	glyphs := calendar.ParseGlyphMode(r.URL.Query().Get("glyphs"))

	calendars, err := h.calendarService.RenderRange(r.Context(), calendar.RenderOptions{
		Months:   months,
		End:      h.clock.Now(),
		Location: h.location,
		Glyphs:   glyphs,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.Calendar{Players: calendars}
	for _, pc := range calendars {
		header := pc.DisplayName
		resp.Blocks = append(resp.Blocks, calendar.ChunkLines(header, pc.Lines, h.transportLimit)...)
	}

	response.JSON(w, http.StatusOK, resp)
}
