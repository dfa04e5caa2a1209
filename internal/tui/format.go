package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// formatDate trims a backend timestamp to just the date portion.
func formatDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// formatDateTime shows "2024-01-01 10:23" for the detail view.
func formatDateTime(ts string) string {
	if ts == "" {
		return ""
	}
	if len(ts) >= 16 {
		return ts[:10] + " " + ts[11:16]
	}
	return ts
}

// relativeAge renders a timestamp as a humanized age ("2 hours ago").
// Unparseable timestamps fall back to the date portion.
func relativeAge(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return formatDate(ts)
	}
	return humanize.Time(t)
}

// truncate shortens s to max characters, ending with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// countLabel renders the issue count with correct pluralization:
// "0 issues", "1 issue", "17 issues".
func countLabel(n int) string {
	if n == 1 {
		return "1 issue"
	}
	return fmt.Sprintf("%d issues", n)
}

// displayAssignee substitutes the placeholder for an unassigned issue.
func displayAssignee(assignee string) string {
	if strings.TrimSpace(assignee) == "" {
		return "Unassigned"
	}
	return assignee
}
