// Package source collects file contents from local paths, glob patterns, and
// GitHub URLs, and aggregates them into a single labeled blob for the prompt.
package source

import "strings"

// Item is one collected file: an identifier (path or URL-relative path) and
// its text content. Items are immutable once created and kept in insertion
// order; duplicates are preserved.
type Item struct {
	Identifier string
	Content    string
}

// Aggregate concatenates items into one string, each preceded by a delimiter
// line carrying its identifier. Zero items yield an empty string.
func Aggregate(items []Item) string {
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, "--- FILE: "+it.Identifier+" ---\n"+it.Content)
	}
	return strings.Join(blocks, "\n\n")
}
