package core

import (
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It is a titled, tagged, timestamped unit of rich-text content.
// Content is opaque markup produced by a RichTextSurface and is never interpreted.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Draft holds the mutable fields of a note as they are written by a commit.
type Draft struct {
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// HasTag reports whether the note carries the exact tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with n.
func (n Note) Clone() Note {
	n.Tags = cloneTags(n.Tags)
	return n
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// normalizeTags trims every tag, drops empty ones and removes duplicates,
// keeping the first occurrence so display order is preserved.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
