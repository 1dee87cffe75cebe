// Package resolver maps handle tokens from parsed result lines to stable
// player identifiers within a member directory.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/dailygrid/dailygrid/internal/model"
)

// Service resolves handle tokens against a member directory.
type Service struct {
	logger *slog.Logger
}

// New creates a resolver service.
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Resolve maps a handle token to a player id.
//
// Direct mentions (<@id>, <@!id>) resolve to the embedded id without
// consulting the directory. Free-text handles (@name) are matched against
// each member's name fields in three passes, stopping at the first that
// succeeds: case-insensitive exact match, alphanumeric-normalized exact
// match, then unique case-insensitive prefix match. A prefix matching two
// or more members is ambiguous and fails.
func (s *Service) Resolve(ctx context.Context, token string, dir model.MemberDirectory) (model.PlayerID, error) {
	if id, ok := parseMention(token); ok {
		return id, nil
	}

	if !strings.HasPrefix(token, "@") {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownHandle, token)
	}
	handle := strings.TrimSpace(strings.TrimPrefix(token, "@"))
	if handle == "" {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownHandle, token)
	}

	members, err := dir.Members(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrDirectoryUnavailable, err)
	}

	handleLower := strings.ToLower(handle)

	// Pass 1: case-insensitive exact match on any name field.
	for _, m := range members {
		for _, name := range m.NameFields() {
			if strings.EqualFold(name, handle) {
				return m.ID, nil
			}
		}
	}

	// Pass 2: exact match after stripping everything but alphanumerics,
	// which tolerates punctuation and emoji noise in display names.
	handleNorm := normalize(handle)
	if handleNorm != "" {
		for _, m := range members {
			for _, name := range m.NameFields() {
				if normalize(name) == handleNorm {
					return m.ID, nil
				}
			}
		}
	}

	// Pass 3: unique case-insensitive prefix match.
	var matches []model.Member
	for _, m := range members {
		for _, name := range m.NameFields() {
			if strings.HasPrefix(strings.ToLower(name), handleLower) {
				matches = append(matches, m)
				break
			}
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("%w: %q", model.ErrUnknownHandle, token)
	default:
		s.logger.Warn("handle prefix is ambiguous",
			slog.String("handle", handle),
			slog.Int("matches", len(matches)),
		)
		return "", fmt.Errorf("%w: %q", model.ErrAmbiguousHandle, token)
	}
}

// parseMention extracts the id from a direct-mention token.
func parseMention(token string) (model.PlayerID, bool) {
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	raw := strings.TrimPrefix(token[2 : len(token)-1], "!")
	if raw == "" {
		return "", false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return model.PlayerID(raw), true
}

// normalize keeps lowercase alphanumerics only.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
