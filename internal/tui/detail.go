package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// --- Styles for detail view ---

var (
	detailIDStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	detailDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(14)

	detailValueStyle = lipgloss.NewStyle()

	detailHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// issueDetailView is the read-only panel for a single issue. It is pushed
// onto the view stack only after the full issue has been fetched.
type issueDetailView struct {
	issue    tracker.Issue
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newIssueDetailView(issue tracker.Issue, width, height int) issueDetailView {
	v := issueDetailView{
		issue:  issue,
		width:  width,
		height: height,
	}
	v.buildViewport()
	return v
}

// buildViewport creates the viewport with rendered content.
func (v *issueDetailView) buildViewport() {
	content := v.renderContent()

	// Height available: total minus title line (2) and status bar (1)
	vpHeight := v.height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}

	vp := viewport.New(v.width, vpHeight)
	vp.SetContent(content)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	v.viewport = vp
	v.ready = true
}

// renderContent builds the full detail text.
func (v *issueDetailView) renderContent() string {
	issue := v.issue
	maxWidth := v.width - 2
	if maxWidth < 20 {
		maxWidth = 20
	}

	var b strings.Builder

	// Header: short id (y) · status(s) · priority(p)
	header := detailIDStyle.Render(shortID(issue.ID)) + detailHintStyle.Render("(y)")
	meta := []string{
		statusLabel(issue.Status) + detailHintStyle.Render("(s)"),
		priorityLabel(issue.Priority) + detailHintStyle.Render("(p)"),
	}
	b.WriteString(header + "  " + strings.Join(meta, detailDimStyle.Render(" · ")))
	b.WriteString("\n\n")

	// Title (t)
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(issue.Title))
	b.WriteString("  " + detailHintStyle.Render("(t)"))
	b.WriteString("\n")

	// Description (e)
	b.WriteString(renderSection("Description", maxWidth) + detailHintStyle.Render(" (e)") + "\n")
	if issue.Description != "" {
		b.WriteString(issue.Description)
		b.WriteString("\n")
	} else {
		b.WriteString(detailDimStyle.Render("No description") + "\n")
	}

	// Fields section
	b.WriteString("\n")
	b.WriteString(renderSection("Fields", maxWidth) + "\n")
	b.WriteString(renderFieldHint("Assignee", displayAssignee(issue.Assignee), "a"))
	b.WriteString(renderField("ID", issue.ID))
	b.WriteString(renderField("Created", formatDateTime(issue.CreatedAt)))
	b.WriteString(renderField("Updated", formatDateTime(issue.UpdatedAt)))

	b.WriteString("\n")
	b.WriteString(detailHintStyle.Render("j/k: scroll  y: copy id  esc: back") + "\n")

	return b.String()
}

// Update processes key events for the detail view's viewport.
func (v *issueDetailView) Update(msg tea.Msg) tea.Cmd {
	if !v.ready {
		return nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the detail view viewport.
func (v *issueDetailView) View() string {
	if !v.ready {
		return loadingStyle.Render("Loading...")
	}
	return v.viewport.View()
}

// setSize updates the viewport dimensions.
func (v *issueDetailView) setSize(width, height int) {
	v.width = width
	v.height = height
	if v.ready {
		v.buildViewport()
	}
}

// updateIssue replaces the displayed issue and rebuilds the viewport content.
func (v *issueDetailView) updateIssue(issue tracker.Issue) {
	v.issue = issue
	if v.ready {
		v.buildViewport()
	}
}

// --- Helpers ---

func renderSection(label string, maxWidth int) string {
	// "─── Label ─────────"
	remaining := maxWidth - 4 - len(label) - 1
	if remaining < 0 {
		remaining = 0
	}
	tail := strings.Repeat("─", remaining)
	return detailSectionStyle.Render(fmt.Sprintf("─── %s %s", label, tail))
}

func renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return detailLabelStyle.Render(label) + detailValueStyle.Render(value) + "\n"
}

func renderFieldHint(label, value, hint string) string {
	if value == "" {
		return ""
	}
	return detailLabelStyle.Render(label+detailHintStyle.Render("("+hint+")")) + detailValueStyle.Render(value) + "\n"
}
