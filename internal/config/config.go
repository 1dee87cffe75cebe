// Package config defines process configuration and its loading order.
// Values are layered: defaults, then an optional YAML file pointed at by
// DAILYGRID_CONFIG, then DAILYGRID_-prefixed environment variables.
package config

// RosterEntry seeds one member into the in-process member directory.
type RosterEntry struct {
	ID          string `koanf:"id"`
	Username    string `koanf:"username"`
	DisplayName string `koanf:"display_name"`
	GlobalName  string `koanf:"global_name"`
}

// Numbering configures the mapping from calendar dates to puzzle numbers.
type Numbering struct {
	// EpochDate is the local date that maps to BaseNumber.
	EpochDate string `koanf:"epoch_date"`
	// BaseNumber is the puzzle number at EpochDate.
	BaseNumber int `koanf:"base_number"`
	// MinDate is the earliest date catch-up will scan messages from.
	MinDate string `koanf:"min_date"`
	// DateFormat is the Go reference layout for EpochDate and MinDate.
	DateFormat string `koanf:"date_format"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Timezone is the IANA zone name used for day boundaries and the
	// calendar view. "Local" uses the process timezone.
	Timezone string `koanf:"timezone"`

	// TransportLimit caps each outgoing text block, in bytes. It mirrors
	// the chat transport's message size limit minus formatting overhead.
	TransportLimit int `koanf:"transport_limit"`

	// MaxLeaderboard caps the number of ranked entries in a snapshot.
	MaxLeaderboard int `koanf:"max_leaderboard"`

	// Numbering holds the puzzle numbering configuration.
	Numbering Numbering `koanf:"numbering"`

	// Roster seeds the member directory.
	Roster []RosterEntry `koanf:"roster"`

	// TranscriptPath, when set, is a JSONL message transcript scanned at
	// startup before the API begins serving.
	TranscriptPath string `koanf:"transcript_path"`

	// RecomputeDaily enables the daily streak recompute job.
	RecomputeDaily  bool `koanf:"recompute_daily"`
	RecomputeHour   int  `koanf:"recompute_hour"`
	RecomputeMinute int  `koanf:"recompute_minute"`
}

// New returns a Config populated with defaults. The numbering defaults
// align with Wordle's published epoch.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		Timezone:       "Local",
		TransportLimit: 1900,
		MaxLeaderboard: 10,
		Numbering: Numbering{
			EpochDate:  "2021-06-19",
			BaseNumber: 0,
			MinDate:    "2024-06-19",
			DateFormat: "2006-01-02",
		},
		RecomputeHour:   0,
		RecomputeMinute: 5,
	}
}
