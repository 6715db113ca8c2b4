package core

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns the notes matching both the search query and every tag in tags,
// preserving their relative order.
//
// The query is matched case-insensitively against the title and the raw content,
// markup included. An empty query and an empty tag set match everything.
func Filter(notes []Note, query string, tags []string) []Note {
	q := strings.ToLower(query)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if matchesQuery(n, q) && matchesTags(n, tags) {
			out = append(out, n)
		}
	}
	return out
}

func matchesQuery(n Note, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery)
}

func matchesTags(n Note, tags []string) bool {
	for _, t := range tags {
		if !n.HasTag(t) {
			return false
		}
	}
	return true
}

// AllTags returns every distinct tag across notes in first-seen order.
func AllTags(notes []Note) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, n := range notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// TagsMatching returns the distinct tags that match a glob pattern.
// Patterns follow doublestar syntax so hierarchical tags such as "work/acme"
// can be selected with "work/*" or "**".
func TagsMatching(notes []Note, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []string
	for _, t := range AllTags(notes) {
		ok, err := doublestar.Match(pattern, t)
		if err != nil {
			return nil, fmt.Errorf("match tag %q: %w", t, err)
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
