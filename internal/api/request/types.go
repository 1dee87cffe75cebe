package request

import "time"

// IngestMessage is the body for POST /api/v1/messages.
type IngestMessage struct {
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Catchup is the body for POST /api/v1/catchup. Exactly one of
// TranscriptPath or Messages should be set.
type Catchup struct {
	TranscriptPath string          `json:"transcript_path,omitempty"`
	Messages       []IngestMessage `json:"messages,omitempty"`
}
