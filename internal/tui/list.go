package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// listState represents the loading state of the issue list.
type listState int

const (
	listLoading listState = iota
	listReady
	listError
	listEmpty
)

// columnDef holds display metadata for a known issue field column.
type columnDef struct {
	title    string
	minWidth int
	flex     bool // if true, absorbs remaining space
}

// listColumns maps config column names to display metadata.
var listColumns = map[string]columnDef{
	"id":       {title: "ID", minWidth: 10},
	"title":    {title: "Title", minWidth: 20, flex: true},
	"status":   {title: "Status", minWidth: 13},
	"priority": {title: "Priority", minWidth: 10},
	"assignee": {title: "Assignee", minWidth: 18},
	"created":  {title: "Created", minWidth: 12},
	"updated":  {title: "Updated", minWidth: 16},
}

// buildColumns creates bubbles table columns from config column names,
// auto-sizing to the given total width.
func buildColumns(names []string, totalWidth int) []table.Column {
	cols := make([]table.Column, len(names))
	fixedTotal := 0
	flexCount := 0

	for i, name := range names {
		def, ok := listColumns[name]
		if !ok {
			def = columnDef{title: name, minWidth: 12}
		}
		cols[i] = table.Column{Title: def.title, Width: def.minWidth}
		if def.flex {
			flexCount++
		} else {
			fixedTotal += def.minWidth
		}
	}

	// Distribute remaining width to flex columns
	if flexCount > 0 {
		padding := len(names) * 2
		remaining := totalWidth - fixedTotal - padding
		if remaining < 0 {
			remaining = 0
		}
		perFlex := remaining / flexCount
		if perFlex < 20 {
			perFlex = 20
		}
		for i, name := range names {
			def := listColumns[name]
			if def.flex {
				cols[i].Width = perFlex
			}
		}
	}

	return cols
}

// issuesToRows converts issues to table rows based on the configured columns.
func issuesToRows(issues []tracker.Issue, columns []string) []table.Row {
	rows := make([]table.Row, len(issues))
	for i, issue := range issues {
		row := make(table.Row, len(columns))
		for j, col := range columns {
			row[j] = fieldValue(issue, col)
		}
		rows[i] = row
	}
	return rows
}

// fieldValue extracts a display string for a given column name from an issue.
func fieldValue(issue tracker.Issue, column string) string {
	switch column {
	case "id":
		return shortID(issue.ID)
	case "title":
		return issue.Title
	case "status":
		return string(issue.Status)
	case "priority":
		return priorityIcon(issue.Priority)
	case "assignee":
		return displayAssignee(issue.Assignee)
	case "created":
		return formatDate(issue.CreatedAt)
	case "updated":
		return relativeAge(issue.UpdatedAt)
	}
	return ""
}

// shortID abbreviates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// statusCounts tallies issues per workflow state. Counts cover only the
// fetched page, not the whole dataset.
func statusCounts(issues []tracker.Issue) map[tracker.Status]int {
	counts := make(map[tracker.Status]int, len(tracker.Statuses))
	for _, issue := range issues {
		counts[issue.Status]++
	}
	return counts
}
