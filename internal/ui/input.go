package ui

import (
	"github.com/anditko/docnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleFilterInput routes printable keys into the active panel's filter.
// Returns true when the key was consumed.
func (m *Model) handleFilterInput(key tea.KeyMsg) bool {
	view := m.activePanelView()
	switch key.String() {
	case "ctrl+u":
		if view.Filter == "" {
			return false
		}
		view.SetFilter("", 0)
		events.Filter.Cleared(m.stack.ActivePanel().String())
		view.EnsureCursorVisible(m.maxVisibleItems())
		return true
	case "ctrl+w":
		if view.DeleteFilterWordBackward() {
			events.Filter.Backspace(m.stack.ActivePanel().String(), view.Filter)
			view.EnsureCursorVisible(m.maxVisibleItems())
			return true
		}
		return false
	case "backspace":
		if view.DeleteFilterRuneBackward() {
			events.Filter.Backspace(m.stack.ActivePanel().String(), view.Filter)
			view.EnsureCursorVisible(m.maxVisibleItems())
			return true
		}
		return false
	}
	if key.Type == tea.KeyRunes && len(key.Runes) > 0 && !key.Alt {
		if view.InsertFilterText(string(key.Runes)) {
			events.Filter.Append(m.stack.ActivePanel().String(), view.Filter)
			view.EnsureCursorVisible(m.maxVisibleItems())
			return true
		}
	}
	if key.Type == tea.KeySpace {
		if view.InsertFilterText(" ") {
			events.Filter.Append(m.stack.ActivePanel().String(), view.Filter)
			return true
		}
	}
	return false
}
