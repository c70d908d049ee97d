package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyScrollingHidesAndShowsBar(t *testing.T) {
	m, h := newTestShell(t, 60)
	for i := 0; i < 5; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.viewport.YOffset != 5 {
		t.Fatalf("expected offset 5, got %d", m.viewport.YOffset)
	}
	if m.Visibility().Visible() {
		t.Fatalf("expected bar hidden after scrolling past the header")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if !m.Visibility().Visible() {
		t.Fatalf("expected bar back on the first upward step")
	}
}

func TestScrollToTopPinsBar(t *testing.T) {
	m, _ := newTestShell(t, 60)
	m.scrollTo(80)
	if m.Visibility().Visible() {
		t.Fatalf("expected hidden bar as precondition")
	}
	m.scrollTo(0)
	if !m.Visibility().Visible() {
		t.Fatalf("expected bar pinned at the top")
	}
}

func TestWheelBurstCoalescesToOneRecomputation(t *testing.T) {
	m, _ := newTestShell(t, 60)

	cmd := m.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown})
	if cmd == nil {
		t.Fatalf("expected first wheel notch to schedule a frame")
	}
	if m.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown}) != nil {
		t.Fatalf("expected second notch coalesced")
	}
	if m.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown}) != nil {
		t.Fatalf("expected third notch coalesced")
	}

	m.handleFrameTickMsg(frameTickMsg{})
	if m.viewport.YOffset != 3*wheelLines {
		t.Fatalf("expected burst to land on the net offset, got %d", m.viewport.YOffset)
	}
	if m.Visibility().Visible() {
		t.Fatalf("expected bar hidden after a downward burst")
	}

	if m.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelUp}) == nil {
		t.Fatalf("expected a new burst to schedule another frame")
	}
	m.handleFrameTickMsg(frameTickMsg{})
	if m.viewport.YOffset != 2*wheelLines {
		t.Fatalf("expected upward notch applied, got %d", m.viewport.YOffset)
	}
	if !m.Visibility().Visible() {
		t.Fatalf("expected bar visible after upward movement")
	}
}

func TestWheelBurstMatchesIndividualHandling(t *testing.T) {
	coalesced, _ := newTestShell(t, 60)
	coalesced.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown})
	coalesced.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown})
	coalesced.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelUp})
	coalesced.handleFrameTickMsg(frameTickMsg{})

	individual, _ := newTestShell(t, 60)
	for _, lines := range []int{wheelLines, wheelLines, -wheelLines} {
		individual.scrollBy(lines)
	}

	if coalesced.viewport.YOffset != individual.viewport.YOffset {
		t.Fatalf("coalesced offset %d diverged from individual %d",
			coalesced.viewport.YOffset, individual.viewport.YOffset)
	}
}

func TestScrollLockedWhileSidebarOpen(t *testing.T) {
	m, h := newTestShell(t, 60)
	h.Send(keyRunes("m"))
	if !m.scrollLocked {
		t.Fatalf("expected scroll locked while sidebar open")
	}
	m.scrollBy(10)
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected key scrolling swallowed, got offset %d", m.viewport.YOffset)
	}
	if m.offerWheel(wheelLines) != nil {
		t.Fatalf("expected wheel input swallowed while locked")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.scrollLocked {
		t.Fatalf("expected scroll unlocked after close")
	}
	m.scrollBy(10)
	if m.viewport.YOffset != 10 {
		t.Fatalf("expected scrolling restored, got %d", m.viewport.YOffset)
	}
}

func TestStaleFrameTickAfterLockIsDropped(t *testing.T) {
	m, h := newTestShell(t, 60)
	if m.handleMouseMsg(tea.MouseMsg{Type: tea.MouseWheelDown}) == nil {
		t.Fatalf("expected frame scheduled")
	}
	h.Send(keyRunes("m")) // sidebar opens before the frame fires
	m.handleFrameTickMsg(frameTickMsg{})
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected pending scroll discarded under lock, got %d", m.viewport.YOffset)
	}
}

func TestBackdropClickClosesSidebar(t *testing.T) {
	m, h := newTestShell(t, 60)
	h.Send(keyRunes("m"))
	h.Send(tea.MouseMsg{Type: tea.MouseLeft, X: m.sidebarWidth() - 1, Y: 5})
	if !m.Sidebar().IsOpen() {
		t.Fatalf("expected click inside the panel ignored")
	}
	h.Send(tea.MouseMsg{Type: tea.MouseLeft, X: m.sidebarWidth() + 5, Y: 5})
	if m.Sidebar().IsOpen() {
		t.Fatalf("expected backdrop click to close the sidebar")
	}
}

func TestHomeEndJumpKeys(t *testing.T) {
	m, h := newTestShell(t, 60)
	h.Send(keyRunes("G"))
	if m.viewport.YOffset == 0 {
		t.Fatalf("expected G to jump to the bottom")
	}
	h.Send(keyRunes("g"))
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected g to jump to the top, got %d", m.viewport.YOffset)
	}
	if !m.Visibility().Visible() {
		t.Fatalf("expected bar visible at the top")
	}
}
