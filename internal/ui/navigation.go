package ui

import (
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/menustack"
	"github.com/anditko/docnav/internal/sidebar"
	uistate "github.com/anditko/docnav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// activePanelView returns the view for whichever panel is interactive.
func (m *Model) activePanelView() *uistate.PanelView {
	if m.stack.ActivePanel() == menustack.Secondary && m.secondary != nil {
		return m.secondary
	}
	return m.primary
}

// openSidebar opens the off-canvas menu and restores the primary panel's
// remembered scroll offset.
func (m *Model) openSidebar() {
	m.sidebar.Open()
	m.secondary = nil
	m.primary.ViewportOffset = m.stack.Offset(menustack.Primary)
	m.primary.EnsureCursorVisible(m.maxVisibleItems())
}

// closeSidebar saves the active panel offset, then closes.
func (m *Model) closeSidebar(reason sidebar.CloseReason) {
	m.saveActiveOffset()
	m.sidebar.Close(reason)
	m.secondary = nil
}

func (m *Model) saveActiveOffset() {
	panel := m.stack.ActivePanel()
	m.stack.SetOffset(panel, m.activePanelView().ViewportOffset)
}

// menuEnter descends into a submenu or activates the selected link.
func (m *Model) menuEnter() tea.Cmd {
	if m.loading {
		return nil
	}
	view := m.activePanelView()
	item, ok := view.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(m.stack.ActivePanel().String(), item.ID, item.Label, view.Filter)
	view.SetFilter("", 0)
	if item.HasChildren() {
		m.saveActiveOffset()
		view.LastCursor = view.Cursor
		m.stack.ShowSecondary(&menustack.Content{
			ID:    item.ID,
			Title: item.Label,
			Items: item.Children,
		})
		m.secondary = uistate.NewPanelView(item.ID, item.Label, item.Children)
		m.secondary.ViewportOffset = m.stack.Offset(menustack.Secondary)
		m.secondary.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	}
	if item.Target == "" {
		m.setInfo("Nothing to open here yet.")
		return nil
	}
	// Selecting a navigable link auto-closes the sidebar.
	m.closeSidebar(sidebar.ReasonLink)
	return m.loadDocCmd(item)
}

// menuBack slides from Secondary back to Primary, restoring the primary
// panel's scroll position and cursor.
func (m *Model) menuBack() {
	if m.stack.ActivePanel() != menustack.Secondary {
		return
	}
	m.saveActiveOffset()
	m.stack.Back()
	m.secondary = nil
	events.UI.MenuBack(menustack.Secondary.String())
	if m.primary.LastCursor >= 0 && m.primary.LastCursor < len(m.primary.Items) {
		m.primary.Cursor = m.primary.LastCursor
	}
	m.primary.LastCursor = -1
	m.primary.ViewportOffset = m.stack.Offset(menustack.Primary)
	m.primary.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleSidebarKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.stack.ActivePanel() == menustack.Secondary {
			m.menuBack()
			return nil
		}
		m.closeSidebar(sidebar.ReasonEscape)
		return nil
	case "enter":
		return m.menuEnter()
	case "ctrl+t":
		// The sidebar's own theme toggle, a view over the shared store.
		m.store.Toggle()
		return nil
	case "up":
		m.moveMenuCursor(func(p *uistate.PanelView) bool { return p.MoveCursorUp() })
		return nil
	case "down":
		m.moveMenuCursor(func(p *uistate.PanelView) bool { return p.MoveCursorDown() })
		return nil
	case "home":
		m.moveMenuCursor(func(p *uistate.PanelView) bool { return p.MoveCursorHome() })
		return nil
	case "end":
		m.moveMenuCursor(func(p *uistate.PanelView) bool { return p.MoveCursorEnd() })
		return nil
	}
	if m.handleFilterInput(key) {
		return nil
	}
	return nil
}

func (m *Model) moveMenuCursor(move func(*uistate.PanelView) bool) {
	view := m.activePanelView()
	if move(view) {
		events.UI.MenuCursor(m.stack.ActivePanel().String(), view.Cursor)
	}
	view.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.sidebar.IsOpen() {
		return m.handleSidebarKey(key)
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "m", "tab":
		if m.compact {
			m.openSidebar()
		}
		return nil
	case "t":
		// The header's theme toggle, the desktop view over the store.
		m.store.Toggle()
		return nil
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup", "b":
		m.scrollBy(-m.viewport.Height)
	case "pgdown", "f", " ":
		m.scrollBy(m.viewport.Height)
	case "g":
		m.scrollTo(0)
	case "G":
		m.scrollTo(m.viewport.TotalLineCount())
	}
	return nil
}
