// Package visibility decides whether the top bar is shown for the current
// scroll state.
package visibility

import "github.com/anditko/docnav/internal/scroll"

// Controller applies the hide-on-scroll hysteresis: the bar hides only after
// a downward scroll past the header height and reappears on any upward
// movement or at the top of the document. While the sidebar is open, or when
// no scroll source is attached, the bar is pinned visible.
type Controller struct {
	enabled      bool
	headerHeight int
	attached     bool
	sidebarOpen  bool
	visible      bool
}

// New returns a controller starting in the visible state. When enabled is
// false the bar never hides.
func New(enabled bool, headerHeight int) *Controller {
	if headerHeight < 0 {
		headerHeight = 0
	}
	return &Controller{
		enabled:      enabled,
		headerHeight: headerHeight,
		attached:     true,
		visible:      true,
	}
}

// Apply consumes one scroll signal and returns the resulting visibility.
// Exactly one transition can happen per signal.
func (c *Controller) Apply(sig scroll.Signal) bool {
	if !c.enabled || !c.attached || c.sidebarOpen {
		c.visible = true
		return c.visible
	}
	if sig.Y <= 0 {
		c.visible = true
		return c.visible
	}
	switch sig.Direction {
	case scroll.Up:
		c.visible = true
	case scroll.Down:
		if sig.Y > c.headerHeight {
			c.visible = false
		}
	}
	return c.visible
}

// SetSidebarOpen forces the bar visible while the sidebar is open. Closing
// hands control back to the scroll state without an immediate transition.
func (c *Controller) SetSidebarOpen(open bool) {
	c.sidebarOpen = open
	if open {
		c.visible = true
	}
}

// Detach marks the scroll source unavailable: the bar freezes visible rather
// than risking a hidden bar nobody can bring back.
func (c *Controller) Detach() {
	c.attached = false
	c.visible = true
}

// Visible reports the current bar visibility.
func (c *Controller) Visible() bool {
	return c.visible
}

// Enabled reports whether hide-on-scroll behaviour is active at all.
func (c *Controller) Enabled() bool {
	return c.enabled
}
