package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmartin/issuedeck/internal/tracker"
)

// Focusable fields of the create form, in tab order.
const (
	createFieldTitle = iota
	createFieldDescription
	createFieldStatus
	createFieldPriority
	createFieldAssignee
	createFieldCount
)

var (
	createLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(13)

	createFocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				Width(13)

	createEnumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// createOverlay is the new-issue form. It implements the overlay interface;
// the result is a *tracker.CreateRequest, or nil when cancelled. The app
// keeps a reference so the form can be reopened with its values intact when
// submission fails.
type createOverlay struct {
	titleInput    textinput.Model
	descInput     textarea.Model
	assigneeInput textinput.Model
	statusIdx     int
	priorityIdx   int

	focus  int
	isDone bool
	result interface{}
}

func newCreateOverlay(width, height int) *createOverlay {
	ti := textinput.New()
	ti.Placeholder = "short summary (required)"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "optional details"
	ta.SetWidth(min(width-24, 50))
	ta.SetHeight(max(min(height-18, 6), 3))
	ta.KeyMap.InsertNewline.SetKeys("enter")

	ai := textinput.New()
	ai.Placeholder = "email or name (optional)"
	ai.CharLimit = 100
	ai.Width = 50

	return &createOverlay{
		titleInput:    ti,
		descInput:     ta,
		assigneeInput: ai,
		priorityIdx:   indexOfPriority(tracker.PriorityMedium),
	}
}

func indexOfPriority(p tracker.Priority) int {
	for i, candidate := range tracker.Priorities {
		if candidate == p {
			return i
		}
	}
	return 0
}

// reopen clears the done flag so the form shows again after a failed
// submission, preserving what the user typed.
func (c *createOverlay) reopen() {
	c.isDone = false
	c.result = nil
}

// reset clears all fields after a successful submission.
func (c *createOverlay) reset() {
	c.titleInput.SetValue("")
	c.descInput.SetValue("")
	c.assigneeInput.SetValue("")
	c.statusIdx = 0
	c.priorityIdx = indexOfPriority(tracker.PriorityMedium)
	c.setFocus(createFieldTitle)
	c.isDone = false
	c.result = nil
}

// request assembles the submission payload. Blank optional fields become
// null in the JSON body.
func (c *createOverlay) request() *tracker.CreateRequest {
	return &tracker.CreateRequest{
		Title:       strings.TrimSpace(c.titleInput.Value()),
		Description: tracker.Nullable(strings.TrimSpace(c.descInput.Value())),
		Status:      tracker.Statuses[c.statusIdx],
		Priority:    tracker.Priorities[c.priorityIdx],
		Assignee:    tracker.Nullable(strings.TrimSpace(c.assigneeInput.Value())),
	}
}

func (c *createOverlay) setFocus(field int) {
	c.focus = field
	c.titleInput.Blur()
	c.descInput.Blur()
	c.assigneeInput.Blur()
	switch field {
	case createFieldTitle:
		c.titleInput.Focus()
	case createFieldDescription:
		c.descInput.Focus()
	case createFieldAssignee:
		c.assigneeInput.Focus()
	}
}

func (c *createOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch km.String() {
	case "esc":
		c.isDone = true
		c.result = nil
		return c, nil

	case "ctrl+s":
		c.isDone = true
		c.result = c.request()
		return c, nil

	case "tab":
		c.setFocus((c.focus + 1) % createFieldCount)
		return c, nil

	case "shift+tab":
		c.setFocus((c.focus + createFieldCount - 1) % createFieldCount)
		return c, nil

	case "enter":
		// Enter submits from single-line fields; the textarea keeps it
		// for newlines.
		if c.focus != createFieldDescription {
			c.isDone = true
			c.result = c.request()
			return c, nil
		}

	case "left", "right":
		switch c.focus {
		case createFieldStatus:
			c.statusIdx = cycle(c.statusIdx, len(tracker.Statuses), km.String() == "right")
			return c, nil
		case createFieldPriority:
			c.priorityIdx = cycle(c.priorityIdx, len(tracker.Priorities), km.String() == "right")
			return c, nil
		}
	}

	var cmd tea.Cmd
	switch c.focus {
	case createFieldTitle:
		c.titleInput, cmd = c.titleInput.Update(msg)
	case createFieldDescription:
		c.descInput, cmd = c.descInput.Update(msg)
	case createFieldAssignee:
		c.assigneeInput, cmd = c.assigneeInput.Update(msg)
	}
	return c, cmd
}

func cycle(idx, n int, forward bool) int {
	if forward {
		return (idx + 1) % n
	}
	return (idx + n - 1) % n
}

func (c *createOverlay) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render("New Issue"))
	b.WriteString("\n")

	b.WriteString(c.label("Title", createFieldTitle) + c.titleInput.View() + "\n\n")
	b.WriteString(c.label("Description", createFieldDescription) + "\n" + c.descInput.View() + "\n\n")
	b.WriteString(c.label("Status", createFieldStatus) + c.enumView(string(tracker.Statuses[c.statusIdx]), createFieldStatus) + "\n")
	b.WriteString(c.label("Priority", createFieldPriority) + c.enumView(string(tracker.Priorities[c.priorityIdx]), createFieldPriority) + "\n")
	b.WriteString(c.label("Assignee", createFieldAssignee) + c.assigneeInput.View() + "\n")

	b.WriteString(overlayHintStyle.Render("tab: next field  ←/→: change value  enter/ctrl+s: create  esc: cancel"))

	return overlayBox(b.String(), width, height)
}

func (c *createOverlay) label(text string, field int) string {
	if c.focus == field {
		return createFocusedLabelStyle.Render(text)
	}
	return createLabelStyle.Render(text)
}

func (c *createOverlay) enumView(value string, field int) string {
	if c.focus == field {
		return overlaySelectedStyle.Render("‹ " + value + " ›")
	}
	return createEnumStyle.Render(value)
}

func (c *createOverlay) done() (bool, interface{}) {
	return c.isDone, c.result
}
