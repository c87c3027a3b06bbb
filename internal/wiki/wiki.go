// Package wiki post-processes generated text into Confluence wiki markup.
package wiki

import (
	"regexp"
	"strings"
)

// headingRe matches lines already using Confluence h2./h3. markup.
// Markdown ##/### headings are deliberately left alone.
var headingRe = regexp.MustCompile(`(?m)^(h[23]\.\s*)(.+)$`)

// Format prepares text for Confluence rendering: heading titles are bolded
// and table rows are renormalized with trimmed cells. Headings are rewritten
// in one global pass; table rows are handled line by line, stateless across
// lines. Format is idempotent and never changes a row's cell count.
func Format(text string) string {
	text = headingRe.ReplaceAllString(text, "$1*$2*")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "||"):
			lines[i] = "|| " + strings.Join(splitCells(line, "||"), " || ")
		case strings.HasPrefix(line, "|"):
			lines[i] = "| " + strings.Join(splitCells(line, "|"), " | ")
		}
	}
	return strings.Join(lines, "\n")
}

// splitCells strips the outer pipes of a table row and returns its trimmed
// cells. Cells are never added or removed.
func splitCells(row, sep string) []string {
	row = strings.Trim(strings.TrimSpace(row), "|")
	cells := strings.Split(row, sep)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
