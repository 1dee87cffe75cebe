package model

import "context"

// Member is a chat platform member as seen by the handle resolver.
// A member is either resolved from the directory or a placeholder
// synthesized when a result is attributed to an id the directory does
// not know; unresolved membership is never a fatal condition.
type Member struct {
	ID          PlayerID
	Username    string
	DisplayName string
	GlobalName  string
	Placeholder bool
}

// NewPlaceholderMember synthesizes a display record for an id the
// directory could not produce. All name fields fall back to the id.
func NewPlaceholderMember(id PlayerID) Member {
	return Member{
		ID:          id,
		Username:    string(id),
		DisplayName: string(id),
		Placeholder: true,
	}
}

// NameFields returns the member's known name fields in match-priority
// order, skipping empty ones.
func (m Member) NameFields() []string {
	fields := make([]string, 0, 3)
	for _, f := range []string{m.Username, m.DisplayName, m.GlobalName} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// MemberDirectory is the roster-lookup capability supplied by the chat
// platform collaborator at the ingestion boundary.
type MemberDirectory interface {
	// Members enumerates all known members. Failure here is the only
	// directory error fatal to a single ingestion operation.
	Members(ctx context.Context) ([]Member, error)
	// Member looks up a single member by id.
	Member(ctx context.Context, id PlayerID) (Member, bool)
}
