package ui

import (
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/sidebar"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollBy moves the content viewport and pushes the new position through
// the tracker. A scroll lock (open sidebar) swallows the movement.
func (m *Model) scrollBy(lines int) {
	if m.scrollLocked || lines == 0 {
		return
	}
	m.scrollTo(m.viewport.YOffset + lines)
}

func (m *Model) scrollTo(offset int) {
	if m.scrollLocked {
		return
	}
	m.viewport.SetYOffset(offset)
	m.observeScroll()
}

// observeScroll feeds the viewport position to the tracker and applies the
// resulting signal to the visibility controller.
func (m *Model) observeScroll() {
	sig := m.tracker.Observe(m.viewport.YOffset)
	visible := m.vis.Apply(sig)
	events.Navbar.Visible(visible, sig.Y)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Type {
	case tea.MouseWheelUp:
		return m.offerWheel(-wheelLines)
	case tea.MouseWheelDown:
		return m.offerWheel(wheelLines)
	case tea.MouseLeft:
		if m.sidebar.IsOpen() && mouse.X >= m.sidebarWidth() {
			// Click on the backdrop region closes the sidebar.
			m.closeSidebar(sidebar.ReasonBackdrop)
		}
	}
	return nil
}

// offerWheel coalesces wheel bursts: positions accumulate and at most one
// recomputation runs per frame tick, landing on the same final offset as
// handling each notch individually.
func (m *Model) offerWheel(lines int) tea.Cmd {
	if m.scrollLocked {
		return nil
	}
	m.wheelAccum += lines
	if m.coalescer.Offer(m.viewport.YOffset + m.wheelAccum) {
		return frameTick()
	}
	return nil
}

func (m *Model) handleFrameTickMsg(tea.Msg) tea.Cmd {
	y, ok := m.coalescer.Flush()
	m.wheelAccum = 0
	if !ok || m.scrollLocked {
		return nil
	}
	m.scrollTo(y)
	return nil
}
