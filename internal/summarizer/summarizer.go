// Package summarizer reduces an e-mail body to the one-line content string
// stored in the interaction log.
package summarizer

import (
	"context"
	"strings"
)

// DefaultContent is stored when the e-mail body is empty.
const DefaultContent = "Informações recebidas por e-mail."

type Summarizer interface {
	Summarize(ctx context.Context, body string) string
}

// Simple collapses the body into a single line and truncates it. It is the
// deterministic fallback for every other implementation.
type Simple struct {
	maxLen int
}

func NewSimple(maxLen int) *Simple {
	if maxLen <= 0 {
		maxLen = 120
	}
	return &Simple{maxLen: maxLen}
}

func (s *Simple) Summarize(_ context.Context, body string) string {
	line := strings.Join(strings.Fields(body), " ")
	if line == "" {
		return DefaultContent
	}
	// Truncate by runes, not bytes: accented content is the norm here.
	runes := []rune(line)
	if len(runes) > s.maxLen {
		return string(runes[:s.maxLen]) + "..."
	}
	return line
}
