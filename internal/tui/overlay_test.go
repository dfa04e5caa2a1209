package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSelectionOverlayNavigation(t *testing.T) {
	items := []selectionItem{
		{ID: "open", Label: "open"},
		{ID: "in-progress", Label: "in-progress"},
		{ID: "closed", Label: "closed"},
	}
	s := newSelectionOverlay("Filter by Status", items)

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.cursor)
	}

	// Down at the bottom stays put.
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.cursor != 2 {
		t.Errorf("cursor moved past the end: %d", s.cursor)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	isDone, result := s.done()
	if !isDone {
		t.Fatal("enter should finish the overlay")
	}
	if item := result.(*selectionItem); item.ID != "closed" {
		t.Errorf("selected %q, want closed", item.ID)
	}
}

func TestSelectionOverlayEscape(t *testing.T) {
	s := newSelectionOverlay("Sort By", []selectionItem{{ID: "title", Label: "title"}})
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	isDone, result := s.done()
	if !isDone || result != nil {
		t.Error("esc should finish with a nil result")
	}
}

func TestSelectionOverlayPreselect(t *testing.T) {
	items := []selectionItem{
		{ID: "low", Label: "low"},
		{ID: "medium", Label: "medium"},
		{ID: "high", Label: "high"},
	}
	s := newSelectionOverlay("Change Priority", items).preselect("high")
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.cursor)
	}

	// Unknown ids leave the cursor at the top.
	s = newSelectionOverlay("Change Priority", items).preselect("bogus")
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
}

func TestTextInputOverlay(t *testing.T) {
	o := newTextInputOverlay("Edit Title", "old title")
	if o.input.Value() != "old title" {
		t.Fatalf("initial value = %q", o.input.Value())
	}

	typeInto(o, "!")
	o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	isDone, result := o.done()
	if !isDone {
		t.Fatal("enter should finish the overlay")
	}
	if got := result.(string); got != "old title!" {
		t.Errorf("result = %q", got)
	}
}

func TestTextEditorOverlay(t *testing.T) {
	e := newTextEditorOverlay("Edit Description", "first", 100, 30)

	// Enter inserts a newline instead of submitting.
	e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if isDone, _ := e.done(); isDone {
		t.Fatal("enter should not submit the editor")
	}

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	isDone, result := e.done()
	if !isDone {
		t.Fatal("ctrl+s should submit the editor")
	}
	if got := result.(string); got != "first\n" {
		t.Errorf("result = %q, want %q", got, "first\n")
	}
}
