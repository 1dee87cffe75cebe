package model

import "time"

// ChatMessage is the ingestion-boundary view of one chat message.
// The transport client owns delivery and event dispatch; the engine only
// sees the author, the raw content and the creation instant.
type ChatMessage struct {
	ID        string
	AuthorID  PlayerID
	Content   string
	CreatedAt time.Time
}
