package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlay is a transient input capture that floats on top of the list or
// detail view. When done() returns true, the overlay is dismissed.
// result is nil if aborted, or contains the user's selection/input.
type overlay interface {
	Update(tea.Msg) (overlay, tea.Cmd)
	View(width, height int) string
	done() (bool, interface{})
}

// --- Styles ---

var (
	overlayBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12")).
				Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				MarginBottom(1)

	overlayHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)

	overlaySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("12")).
				Bold(true)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// overlayBox sizes and centers rendered overlay content.
func overlayBox(content string, width, height int) string {
	boxWidth := width - 10
	if boxWidth < 30 {
		boxWidth = 30
	}
	if boxWidth > 70 {
		boxWidth = 70
	}
	box := overlayBorderStyle.Width(boxWidth).Render(content)
	return lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center, box)
}

// --- Selection List Overlay ---

// selectionItem is a single option in the selection list.
type selectionItem struct {
	ID    string
	Label string
	Desc  string // optional secondary text
}

// selectionOverlay is a navigable selection list, used for the sort field
// picker and the status/priority choosers.
type selectionOverlay struct {
	title  string
	items  []selectionItem
	cursor int
	isDone bool
	result interface{} // *selectionItem or nil
}

func newSelectionOverlay(title string, items []selectionItem) *selectionOverlay {
	return &selectionOverlay{
		title: title,
		items: items,
	}
}

// preselect moves the cursor to the item with the given id.
func (s *selectionOverlay) preselect(id string) *selectionOverlay {
	for i, item := range s.items {
		if item.ID == id {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *selectionOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			s.isDone = true
			s.result = nil
		case "enter":
			if s.cursor < len(s.items) {
				s.result = &s.items[s.cursor]
			}
			s.isDone = true
		case "up", "k", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j", "ctrl+n":
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		}
	}
	return s, nil
}

func (s *selectionOverlay) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render(s.title))
	b.WriteString("\n")

	for i, item := range s.items {
		line := item.Label
		if item.Desc != "" {
			line += overlayDimStyle.Render("  " + item.Desc)
		}
		if i == s.cursor {
			b.WriteString(overlaySelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(overlayHintStyle.Render("↑/↓: navigate  enter: select  esc: cancel"))
	return overlayBox(b.String(), width, height)
}

func (s *selectionOverlay) done() (bool, interface{}) {
	return s.isDone, s.result
}

// --- Text Input Overlay ---

// textInputOverlay is a single-line text input, used for title and assignee
// edits and the assignee filter.
type textInputOverlay struct {
	title  string
	input  textinput.Model
	isDone bool
	result interface{} // string or nil
}

func newTextInputOverlay(title, initial string) *textInputOverlay {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return &textInputOverlay{
		title: title,
		input: ti,
	}
}

func (t *textInputOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			t.isDone = true
			t.result = nil
			return t, nil
		case "enter":
			t.isDone = true
			t.result = t.input.Value()
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *textInputOverlay) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render(t.title))
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n")
	b.WriteString(overlayHintStyle.Render("enter: save  esc: cancel"))

	return overlayBox(b.String(), width, height)
}

func (t *textInputOverlay) done() (bool, interface{}) {
	return t.isDone, t.result
}

// --- Text Editor Overlay ---

// textEditorOverlay is a multi-line text editor, used for description edits.
type textEditorOverlay struct {
	title  string
	editor textarea.Model
	isDone bool
	result interface{} // string or nil
}

func newTextEditorOverlay(title, initial string, width, height int) *textEditorOverlay {
	ta := textarea.New()
	ta.SetValue(initial)
	ta.SetWidth(min(width-14, 70))
	ta.SetHeight(max(height-12, 5))
	ta.Focus()
	// Enter inserts newlines; ctrl+s saves
	ta.KeyMap.InsertNewline.SetKeys("enter")

	return &textEditorOverlay{
		title:  title,
		editor: ta,
	}
}

func (e *textEditorOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			e.isDone = true
			e.result = nil
			return e, nil
		case "ctrl+s":
			e.isDone = true
			e.result = e.editor.Value()
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.editor, cmd = e.editor.Update(msg)
	return e, cmd
}

func (e *textEditorOverlay) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render(e.title))
	b.WriteString("\n")
	b.WriteString(e.editor.View())
	b.WriteString("\n")
	b.WriteString(overlayHintStyle.Render("ctrl+s: save  esc: cancel"))

	return overlayBox(b.String(), width, height)
}

func (e *textEditorOverlay) done() (bool, interface{}) {
	return e.isDone, e.result
}

// min returns the smaller of a and b.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// max returns the larger of a and b.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
