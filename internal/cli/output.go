package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case IngestResult:
		o.printIngestResult(v)
	case CatchupReport:
		o.printCatchupReport(v)
	case StatsResult:
		o.printStatsResult(v)
	case CalendarResult:
		o.printCalendarResult(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// IngestResult response type (matches API)
type IngestResult struct {
	ResultsIngested int `json:"results_ingested"`
}

// CatchupReport response type
type CatchupReport struct {
	MessagesScanned int           `json:"messages_scanned"`
	ResultsIngested int           `json:"results_ingested"`
	Players         int           `json:"players"`
	Duration        time.Duration `json:"duration"`
}

// StatsResult response type
type StatsResult struct {
	Snapshot StatsSnapshot `json:"snapshot"`
	Summary  struct {
		Title string   `json:"title"`
		Lines []string `json:"lines"`
	} `json:"summary"`
}

// StatsSnapshot response type
type StatsSnapshot struct {
	Leaderboard []PlayerStats `json:"leaderboard"`
	Players     []PlayerStats `json:"players"`
	Totals      StatsTotals   `json:"totals"`
	AsOf        time.Time     `json:"as_of"`
}

// PlayerStats response type
type PlayerStats struct {
	PlayerID      string   `json:"player_id"`
	DisplayName   string   `json:"display_name"`
	GamesPlayed   int      `json:"games_played"`
	CurrentStreak int      `json:"current_streak"`
	BestStreak    int      `json:"best_streak"`
	Ones          int      `json:"ones"`
	Failures      int      `json:"failures"`
	AvgAll        *float64 `json:"avg_all"`
	Avg30         *float64 `json:"avg_30"`
	Avg7          *float64 `json:"avg_7"`
}

// StatsTotals response type
type StatsTotals struct {
	Games    int `json:"games"`
	Ones     int `json:"ones"`
	Failures int `json:"failures"`
	Players  int `json:"players"`
}

// CalendarResult response type
type CalendarResult struct {
	Players []PlayerCalendar `json:"players"`
	Blocks  []string         `json:"blocks"`
}

// PlayerCalendar response type
type PlayerCalendar struct {
	PlayerID    string   `json:"player_id"`
	DisplayName string   `json:"display_name"`
	Lines       []string `json:"lines"`
}

// Player response type
type Player struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	TotalGames    int    `json:"total_games"`
	CurrentStreak int    `json:"current_streak"`
	LastPlayed    *int   `json:"last_played,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printIngestResult(r IngestResult) {
	fmt.Printf("Results ingested: %d\n", r.ResultsIngested)
}

func (o *Output) printCatchupReport(r CatchupReport) {
	fmt.Printf("Messages scanned: %d\n", r.MessagesScanned)
	fmt.Printf("Results ingested: %d\n", r.ResultsIngested)
	fmt.Printf("Players:          %d\n", r.Players)
	fmt.Printf("Duration:         %s\n", r.Duration)
}

func (o *Output) printStatsResult(r StatsResult) {
	fmt.Println(r.Summary.Title)
	for _, line := range r.Summary.Lines {
		fmt.Println(line)
	}
	// The summary's totals line omits the roster size.
	fmt.Printf("Players: %d\n", r.Snapshot.Totals.Players)
}

func (o *Output) printCalendarResult(r CalendarResult) {
	for i, block := range r.Blocks {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(block)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("ID:             %s\n", p.ID)
	fmt.Printf("Display Name:   %s\n", p.DisplayName)
	fmt.Printf("Total Games:    %d\n", p.TotalGames)
	fmt.Printf("Current Streak: %d\n", p.CurrentStreak)
	if p.LastPlayed != nil {
		fmt.Printf("Last Played:    #%d\n", *p.LastPlayed)
	}
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players recorded.")
		return
	}
	for _, p := range players {
		fmt.Printf("%s  games=%d streak=%d  %s\n",
			p.ID, p.TotalGames, p.CurrentStreak, p.DisplayName)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
