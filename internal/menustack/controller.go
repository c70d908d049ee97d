// Package menustack manages the two-level panel stack inside the off-canvas
// sidebar. The stack is deliberately a fixed Primary/Secondary pair rather
// than a general stack: the navigation tree only ever nests one level deep.
package menustack

import "github.com/anditko/docnav/internal/nav"

// Panel identifies one of the two sidebar panels.
type Panel int

const (
	Primary Panel = iota
	Secondary
)

func (p Panel) String() string {
	if p == Secondary {
		return "secondary"
	}
	return "primary"
}

// RenderState is the render directive for a panel. Both panels stay mounted
// so slide transitions and per-panel scroll offsets survive; whichever panel
// is not active must be rendered inert (no focus, no interaction).
type RenderState int

const (
	Interactive RenderState = iota
	Inert
)

// Content references the submenu a navigation item opened. The controller
// only holds the reference; the items remain owned by the triggering item.
type Content struct {
	ID    string
	Title string
	Items []nav.Item
}

// Controller owns the active-panel state and the per-panel scroll offsets.
type Controller struct {
	active    Panel
	secondary *Content

	// lastSecondaryID survives Back and Reset so re-entering the same
	// submenu restores its remembered offset instead of starting at the top.
	lastSecondaryID string

	primaryOffset   int
	secondaryOffset int
}

// New returns a controller resting on the Primary panel.
func New() *Controller {
	return &Controller{active: Primary}
}

// ActivePanel returns the panel currently interactive.
func (c *Controller) ActivePanel() Panel {
	return c.active
}

// SecondaryContent returns the submenu reference, nil while on Primary.
func (c *Controller) SecondaryContent() *Content {
	return c.secondary
}

// RenderState reports the render directive for a panel. Exactly one panel is
// Interactive at any time.
func (c *Controller) RenderState(p Panel) RenderState {
	if p == c.active {
		return Interactive
	}
	return Inert
}

// ShowSecondary records the submenu reference and slides to the Secondary
// panel. The secondary scroll offset starts at the top for new content and is
// restored when the same submenu is re-entered after Back.
func (c *Controller) ShowSecondary(content *Content) {
	if content == nil {
		return
	}
	if content.ID != c.lastSecondaryID {
		c.secondaryOffset = 0
	}
	c.lastSecondaryID = content.ID
	c.secondary = content
	c.active = Secondary
}

// Back returns to the Primary panel and releases the submenu reference. The
// primary panel's remembered scroll offset is untouched.
func (c *Controller) Back() {
	c.active = Primary
	c.secondary = nil
}

// Reset forces the stack back to Primary regardless of current state. Called
// on every sidebar open, and on close so a Secondary panel never sticks
// across the closed state.
func (c *Controller) Reset() {
	c.active = Primary
	c.secondary = nil
}

// SetOffset stores a panel's scroll offset so switching panels restores the
// prior position instead of resetting.
func (c *Controller) SetOffset(p Panel, offset int) {
	if offset < 0 {
		offset = 0
	}
	if p == Secondary {
		c.secondaryOffset = offset
		return
	}
	c.primaryOffset = offset
}

// Offset returns a panel's remembered scroll offset.
func (c *Controller) Offset(p Panel) int {
	if p == Secondary {
		return c.secondaryOffset
	}
	return c.primaryOffset
}
