// Package sidebar owns the open/closed lifecycle of the off-canvas menu.
package sidebar

import (
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/menustack"
)

// CloseReason records what triggered an auto-close.
type CloseReason int

const (
	ReasonToggle CloseReason = iota
	ReasonLink
	ReasonBackdrop
	ReasonEscape
	ReasonResize
)

func (r CloseReason) String() string {
	switch r {
	case ReasonLink:
		return "link"
	case ReasonBackdrop:
		return "backdrop"
	case ReasonEscape:
		return "escape"
	case ReasonResize:
		return "resize"
	default:
		return "toggle"
	}
}

// Hooks are the side effects the sidebar drives on the surrounding shell.
// Either hook may be nil.
type Hooks struct {
	// LockScroll locks or unlocks scrolling of the underlying content.
	LockScroll func(locked bool)
	// ForceBarVisible pins or releases the top bar's forced visibility.
	ForceBarVisible func(forced bool)
}

// Controller composes the menu stack and exposes total open/close/toggle
// operations over the {open, closed} state.
type Controller struct {
	open  bool
	stack *menustack.Controller
	hooks Hooks
}

// New builds a closed sidebar around the given menu stack.
func New(stack *menustack.Controller, hooks Hooks) *Controller {
	return &Controller{stack: stack, hooks: hooks}
}

// IsOpen reports the current lifecycle state.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Stack exposes the composed menu stack controller.
func (c *Controller) Stack() *menustack.Controller {
	return c.stack
}

// Open is idempotent: it resets the menu stack to Primary, pins the top bar
// visible, and locks content scrolling.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.stack.Reset()
	if c.hooks.ForceBarVisible != nil {
		c.hooks.ForceBarVisible(true)
	}
	if c.hooks.LockScroll != nil {
		c.hooks.LockScroll(true)
	}
	events.Sidebar.Open()
}

// Close is idempotent: it releases the scroll lock and the forced-visible
// override, and forces the stack back to Primary so a Secondary panel never
// survives the closed state.
func (c *Controller) Close(reason CloseReason) {
	if !c.open {
		return
	}
	c.open = false
	c.stack.Reset()
	if c.hooks.LockScroll != nil {
		c.hooks.LockScroll(false)
	}
	if c.hooks.ForceBarVisible != nil {
		c.hooks.ForceBarVisible(false)
	}
	events.Sidebar.Close(reason.String())
}

// Toggle closes an open sidebar and opens a closed one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close(ReasonToggle)
		return
	}
	c.Open()
}
