package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmartin/issuedeck/internal/tracker"
)

func typeInto(o overlay, text string) overlay {
	for _, r := range text {
		o, _ = o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return o
}

func TestCreateOverlayRequest(t *testing.T) {
	c := newCreateOverlay(100, 30)
	typeInto(c, "  Fix login crash  ")

	req := c.request()
	if req.Title != "Fix login crash" {
		t.Errorf("Title = %q, want trimmed", req.Title)
	}
	if req.Description != nil {
		t.Errorf("blank description should be nil, got %v", req.Description)
	}
	if req.Assignee != nil {
		t.Errorf("blank assignee should be nil, got %v", req.Assignee)
	}
	if req.Status != tracker.StatusOpen {
		t.Errorf("Status = %q, want open", req.Status)
	}
	if req.Priority != tracker.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", req.Priority)
	}
}

func TestCreateOverlayTabCyclesFocus(t *testing.T) {
	c := newCreateOverlay(100, 30)
	if c.focus != createFieldTitle {
		t.Fatalf("initial focus = %d, want title", c.focus)
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	for i := 0; i < createFieldCount; i++ {
		c.Update(tab)
	}
	if c.focus != createFieldTitle {
		t.Errorf("focus after full cycle = %d, want title", c.focus)
	}

	c.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if c.focus != createFieldAssignee {
		t.Errorf("shift+tab from title = %d, want assignee", c.focus)
	}
}

func TestCreateOverlayCycleEnums(t *testing.T) {
	c := newCreateOverlay(100, 30)
	c.setFocus(createFieldStatus)

	right := tea.KeyMsg{Type: tea.KeyRight}
	c.Update(right)
	if got := tracker.Statuses[c.statusIdx]; got != tracker.StatusInProgress {
		t.Errorf("status after right = %q, want in-progress", got)
	}

	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := tracker.Statuses[c.statusIdx]; got != tracker.StatusOpen {
		t.Errorf("status after left = %q, want open", got)
	}

	c.setFocus(createFieldPriority)
	c.Update(right)
	if got := tracker.Priorities[c.priorityIdx]; got != tracker.PriorityHigh {
		t.Errorf("priority after right = %q, want high (from medium)", got)
	}
}

func TestCreateOverlaySubmitAndCancel(t *testing.T) {
	c := newCreateOverlay(100, 30)
	typeInto(c, "A bug")

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	isDone, result := c.done()
	if !isDone {
		t.Fatal("enter on the title field should submit")
	}
	req := result.(*tracker.CreateRequest)
	if req.Title != "A bug" {
		t.Errorf("Title = %q", req.Title)
	}

	c.reopen()
	if isDone, _ := c.done(); isDone {
		t.Fatal("reopen should clear the done flag")
	}
	if c.titleInput.Value() != "A bug" {
		t.Error("reopen should keep the draft")
	}

	c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if isDone, result := c.done(); !isDone || result != nil {
		t.Error("esc should finish with a nil result")
	}
}

func TestCreateOverlayEnterInDescriptionInsertsNewline(t *testing.T) {
	c := newCreateOverlay(100, 30)
	c.setFocus(createFieldDescription)
	typeInto(c, "line one")
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if isDone, _ := c.done(); isDone {
		t.Fatal("enter in the description should not submit")
	}
}

func TestCreateOverlayReset(t *testing.T) {
	c := newCreateOverlay(100, 30)
	typeInto(c, "A bug")
	c.setFocus(createFieldStatus)
	c.Update(tea.KeyMsg{Type: tea.KeyRight})

	c.reset()
	if c.titleInput.Value() != "" {
		t.Error("reset should clear the title")
	}
	if c.statusIdx != 0 {
		t.Error("reset should restore the default status")
	}
	if c.focus != createFieldTitle {
		t.Error("reset should refocus the title field")
	}
	if tracker.Priorities[c.priorityIdx] != tracker.PriorityMedium {
		t.Error("reset should restore the default priority")
	}
}
