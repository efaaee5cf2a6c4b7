package entity

import (
	"strings"
	"time"
)

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// Citation is a source attached to an assistant reply. Either field may be empty.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatMessage is one entry of the assistant transcript.
type ChatMessage struct {
	Role      ChatRole   `json:"role"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
	Citations []Citation `json:"citations,omitempty"`
}

// CleanCitations trims citations and drops those with neither title nor URI.
func CleanCitations(in []Citation) []Citation {
	var out []Citation
	for _, c := range in {
		c.Title = strings.TrimSpace(c.Title)
		c.URI = strings.TrimSpace(c.URI)
		if c.Title == "" && c.URI == "" {
			continue
		}
		out = append(out, c)
	}

	return out
}
