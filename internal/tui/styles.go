package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pmartin/issuedeck/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")). // bright blue
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // dim gray

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("12")).
				Bold(true)

	tableCellStyle = lipgloss.NewStyle()

	// Status bar styles
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // red

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // green

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // yellow

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12"))

	filterBarStyle = lipgloss.NewStyle().
			MarginBottom(1)
)

// statusStyles maps each workflow state to its display color.
var statusStyles = map[tracker.Status]lipgloss.Style{
	tracker.StatusOpen:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
	tracker.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
	tracker.StatusClosed:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
}

// statusLabel returns a colored status name for the detail view and status bar.
func statusLabel(s tracker.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

// priorityDef holds the icon and color for a priority level.
type priorityDef struct {
	icon  string
	color lipgloss.Color
}

// priorityMap maps priority levels to their display definition.
var priorityMap = map[tracker.Priority]priorityDef{
	tracker.PriorityCritical: {icon: "⏶⏶", color: lipgloss.Color("#FF5630")},
	tracker.PriorityHigh:     {icon: "⏶", color: lipgloss.Color("#FF7452")},
	tracker.PriorityMedium:   {icon: "≡", color: lipgloss.Color("#FFAB00")},
	tracker.PriorityLow:      {icon: "⏷", color: lipgloss.Color("#2684FF")},
}

// priorityIcon returns a colored icon for the list view. Falls back to the
// raw name if unknown.
func priorityIcon(p tracker.Priority) string {
	if def, ok := priorityMap[p]; ok {
		return lipgloss.NewStyle().Foreground(def.color).Render(def.icon)
	}
	return string(p)
}

// priorityLabel returns a colored "icon name" string for the detail view.
func priorityLabel(p tracker.Priority) string {
	if def, ok := priorityMap[p]; ok {
		style := lipgloss.NewStyle().Foreground(def.color)
		return style.Render(def.icon) + " " + string(p)
	}
	return string(p)
}
