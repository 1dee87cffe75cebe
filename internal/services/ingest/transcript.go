package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dailygrid/dailygrid/internal/model"
)

// transcriptLine is one JSONL record of an archived chat message.
type transcriptLine struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptProvider reads chat history from a JSONL transcript file,
// one message object per line. It serves as the offline stand-in for a
// chat platform's channel history endpoint.
type TranscriptProvider struct {
	path string
}

// NewTranscriptProvider creates a provider for the given transcript file.
func NewTranscriptProvider(path string) *TranscriptProvider {
	return &TranscriptProvider{path: path}
}

var _ HistoryProvider = (*TranscriptProvider)(nil)

// History reads the transcript and yields messages created at or after
// the lower bound, in chronological order. Malformed lines abort the
// scan; a transcript is an artifact, not free-form input.
func (p *TranscriptProvider) History(ctx context.Context, after time.Time, fn func(model.ChatMessage) error) error {
	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}
	defer func() { _ = f.Close() }()

	var messages []model.ChatMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var line transcriptLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return fmt.Errorf("transcript line %d: %w", lineNo, err)
		}
		if line.CreatedAt.Before(after) {
			continue
		}
		id := line.ID
		if id == "" {
			id = uuid.NewString()
		}
		messages = append(messages, model.ChatMessage{
			ID:        id,
			AuthorID:  model.PlayerID(line.AuthorID),
			Content:   line.Content,
			CreatedAt: line.CreatedAt,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
	return nil
}

// SliceProvider yields messages from an in-memory slice, used by the
// API's inline catch-up mode and by tests.
type SliceProvider struct {
	Messages []model.ChatMessage
}

var _ HistoryProvider = (*SliceProvider)(nil)

// History yields the slice's messages in chronological order, filtered
// by the lower bound.
func (p *SliceProvider) History(ctx context.Context, after time.Time, fn func(model.ChatMessage) error) error {
	msgs := make([]model.ChatMessage, 0, len(p.Messages))
	for _, m := range p.Messages {
		if m.CreatedAt.Before(after) {
			continue
		}
		msgs = append(msgs, m)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
	return nil
}
