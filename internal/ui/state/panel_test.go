package state

import (
	"testing"

	"github.com/anditko/docnav/internal/nav"
)

func sampleItems() []nav.Item {
	return []nav.Item{
		{ID: "intro.md", Label: "Welcome"},
		{ID: "guides", Label: "Guides", Children: []nav.Item{{ID: "guides:install.md", Label: "Install"}}},
		{ID: "reference", Label: "Reference"},
	}
}

func TestNewPanelViewCopiesItems(t *testing.T) {
	items := sampleItems()
	p := NewPanelView("root", "Docs", items)
	items[0].Label = "mutated"
	if p.Items[0].Label != "Welcome" {
		t.Fatalf("expected panel to own its items, got %q", p.Items[0].Label)
	}
	if p.LastCursor != -1 {
		t.Fatalf("expected LastCursor initialized to -1, got %d", p.LastCursor)
	}
}

func TestIndexOf(t *testing.T) {
	p := NewPanelView("root", "Docs", sampleItems())
	if idx := p.IndexOf("guides"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := p.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected miss, got %d", idx)
	}
	if idx := p.IndexOf(""); idx != -1 {
		t.Fatalf("expected miss for empty id, got %d", idx)
	}
}

func TestIndexOfFallsBackToSuffix(t *testing.T) {
	p := NewPanelView("guides", "Guides", []nav.Item{{ID: "install.md", Label: "Install"}})
	if idx := p.IndexOf("guides:install.md"); idx != 0 {
		t.Fatalf("expected suffix match, got %d", idx)
	}
}

func TestCurrent(t *testing.T) {
	p := NewPanelView("root", "Docs", sampleItems())
	p.Cursor = 2
	item, ok := p.Current()
	if !ok || item.ID != "reference" {
		t.Fatalf("expected item under cursor, got %#v ok=%v", item, ok)
	}
	empty := NewPanelView("empty", "Empty", nil)
	if _, ok := empty.Current(); ok {
		t.Fatalf("expected no current item for empty panel")
	}
}

func TestUpdateItemsKeepsFilterAndOffset(t *testing.T) {
	p := NewPanelView("root", "Docs", sampleItems())
	p.SetFilter("guide", len("guide"))
	p.ViewportOffset = 0
	p.UpdateItems(append(sampleItems(), nav.Item{ID: "extra", Label: "Guide Extras"}))
	if p.Filter != "guide" {
		t.Fatalf("expected filter retained, got %q", p.Filter)
	}
	for _, item := range p.Items {
		if item.ID == "intro.md" {
			t.Fatalf("expected filter re-applied after update, got %#v", p.Items)
		}
	}
}

func TestUpdateItemsResetsStaleOffset(t *testing.T) {
	items := make([]nav.Item, 10)
	for i := range items {
		items[i] = nav.Item{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	p := NewPanelView("root", "Docs", items)
	p.ViewportOffset = 8
	p.UpdateItems(items[:2])
	if p.ViewportOffset != 0 {
		t.Fatalf("expected stale offset reset, got %d", p.ViewportOffset)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	p := NewPanelView("root", "Docs", sampleItems())
	if !p.MoveCursorUp() || p.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 0 {
		t.Fatalf("expected wrap to top, got %d", p.Cursor)
	}
	p.Cursor = 1
	if !p.MoveCursorDown() || p.Cursor != 2 {
		t.Fatalf("expected simple step down, got %d", p.Cursor)
	}
	if !p.MoveCursorUp() || p.Cursor != 1 {
		t.Fatalf("expected simple step up, got %d", p.Cursor)
	}
}

func TestMoveCursorEmptyPanel(t *testing.T) {
	p := NewPanelView("empty", "Empty", nil)
	if p.MoveCursorUp() || p.MoveCursorDown() || p.MoveCursorHome() || p.MoveCursorEnd() {
		t.Fatalf("expected no movement on an empty panel")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	p := NewPanelView("root", "Docs", sampleItems())
	p.Cursor = 1
	if !p.MoveCursorHome() || p.Cursor != 0 {
		t.Fatalf("expected home, got %d", p.Cursor)
	}
	if p.MoveCursorHome() {
		t.Fatalf("expected no movement when already home")
	}
	if !p.MoveCursorEnd() || p.Cursor != 2 {
		t.Fatalf("expected end, got %d", p.Cursor)
	}
	if p.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	items := make([]nav.Item, 10)
	for i := range items {
		items[i] = nav.Item{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	p := NewPanelView("root", "Docs", items)

	p.Cursor = 7
	p.EnsureCursorVisible(4)
	if p.ViewportOffset != 4 {
		t.Fatalf("expected offset to follow cursor down, got %d", p.ViewportOffset)
	}
	p.Cursor = 1
	p.EnsureCursorVisible(4)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected offset to follow cursor up, got %d", p.ViewportOffset)
	}
	p.Cursor = 99
	p.EnsureCursorVisible(4)
	if p.Cursor != 9 {
		t.Fatalf("expected cursor clamped, got %d", p.Cursor)
	}
}
