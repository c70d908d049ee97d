package state

import (
	"strings"

	"github.com/anditko/docnav/internal/nav"
)

// PanelView encapsulates the browsable state of one sidebar panel: cursor
// position, filter, and viewport offset. The menustack controller decides
// which panel is interactive; PanelView only tracks what is shown inside it.
type PanelView struct {
	ID             string
	Title          string
	Items          []nav.Item
	Full           []nav.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPanelView constructs a panel view over the provided items.
func NewPanelView(id, title string, items []nav.Item) *PanelView {
	p := &PanelView{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	p.UpdateItems(items)
	return p
}

// IndexOf returns the index for a given item identifier.
func (p *PanelView) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		suffix := id[idx+1:]
		for i, item := range p.Items {
			if item.ID == suffix {
				return i
			}
		}
	}
	return -1
}

// UpdateItems refreshes the panel items, re-applying the active filter and
// keeping the viewport offset when it still fits.
func (p *PanelView) UpdateItems(items []nav.Item) {
	prevOffset := p.ViewportOffset
	p.Full = nav.CloneItems(items)
	p.applyFilter()
	if len(p.Items) == 0 {
		p.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

// Current returns the item under the cursor.
func (p *PanelView) Current() (nav.Item, bool) {
	if len(p.Items) == 0 || p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return nav.Item{}, false
	}
	return p.Items[p.Cursor], true
}
