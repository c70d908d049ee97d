package menustack

import (
	"testing"

	"github.com/anditko/docnav/internal/nav"
)

func submenu(id string) *Content {
	return &Content{
		ID:    id,
		Title: id,
		Items: []nav.Item{{ID: id + ":a", Label: "A"}, {ID: id + ":b", Label: "B"}},
	}
}

func TestNewRestsOnPrimary(t *testing.T) {
	c := New()
	if c.ActivePanel() != Primary {
		t.Fatalf("expected primary active, got %s", c.ActivePanel())
	}
	if c.SecondaryContent() != nil {
		t.Fatalf("expected no secondary content at rest")
	}
}

func TestExactlyOnePanelInteractive(t *testing.T) {
	c := New()
	if c.RenderState(Primary) != Interactive || c.RenderState(Secondary) != Inert {
		t.Fatalf("expected primary interactive at rest")
	}
	c.ShowSecondary(submenu("guides"))
	if c.RenderState(Primary) != Inert || c.RenderState(Secondary) != Interactive {
		t.Fatalf("expected secondary interactive after ShowSecondary")
	}
}

func TestShowSecondaryHoldsReference(t *testing.T) {
	c := New()
	content := submenu("guides")
	c.ShowSecondary(content)
	if c.ActivePanel() != Secondary {
		t.Fatalf("expected secondary active, got %s", c.ActivePanel())
	}
	if c.SecondaryContent() != content {
		t.Fatalf("expected the same content reference back")
	}
}

func TestShowSecondaryNilIsIgnored(t *testing.T) {
	c := New()
	c.ShowSecondary(nil)
	if c.ActivePanel() != Primary || c.SecondaryContent() != nil {
		t.Fatalf("expected nil content to be ignored")
	}
}

func TestBackReturnsToPrimaryAndReleasesContent(t *testing.T) {
	c := New()
	c.ShowSecondary(submenu("guides"))
	c.Back()
	if c.ActivePanel() != Primary {
		t.Fatalf("expected primary active after back, got %s", c.ActivePanel())
	}
	if c.SecondaryContent() != nil {
		t.Fatalf("expected secondary content released after back")
	}
}

func TestResetFromSecondary(t *testing.T) {
	c := New()
	c.ShowSecondary(submenu("guides"))
	c.SetOffset(Secondary, 7)
	c.Reset()
	if c.ActivePanel() != Primary || c.SecondaryContent() != nil {
		t.Fatalf("expected reset to land on primary with no content")
	}
	c.Reset()
	if c.ActivePanel() != Primary {
		t.Fatalf("expected repeated reset to be a no-op")
	}
}

func TestPerPanelOffsetsAreIndependent(t *testing.T) {
	c := New()
	c.SetOffset(Primary, 4)
	c.ShowSecondary(submenu("guides"))
	c.SetOffset(Secondary, 9)
	if c.Offset(Primary) != 4 {
		t.Fatalf("expected primary offset retained, got %d", c.Offset(Primary))
	}
	if c.Offset(Secondary) != 9 {
		t.Fatalf("expected secondary offset retained, got %d", c.Offset(Secondary))
	}
	c.Back()
	if c.Offset(Primary) != 4 {
		t.Fatalf("expected back to leave the primary offset alone, got %d", c.Offset(Primary))
	}
}

func TestShowSecondaryResetsOffsetForNewContent(t *testing.T) {
	c := New()
	c.ShowSecondary(submenu("guides"))
	c.SetOffset(Secondary, 5)
	c.Back()
	c.ShowSecondary(submenu("guides"))
	if c.Offset(Secondary) != 5 {
		t.Fatalf("expected offset retained for the same submenu, got %d", c.Offset(Secondary))
	}
	c.ShowSecondary(submenu("reference"))
	if c.Offset(Secondary) != 0 {
		t.Fatalf("expected offset reset for different content, got %d", c.Offset(Secondary))
	}
}

func TestSecondaryOffsetSurvivesReset(t *testing.T) {
	c := New()
	c.ShowSecondary(submenu("guides"))
	c.SetOffset(Secondary, 3)
	c.Reset()
	c.ShowSecondary(submenu("guides"))
	if c.Offset(Secondary) != 3 {
		t.Fatalf("expected offset retained across reset, got %d", c.Offset(Secondary))
	}
}

func TestNegativeOffsetClamped(t *testing.T) {
	c := New()
	c.SetOffset(Primary, -3)
	if c.Offset(Primary) != 0 {
		t.Fatalf("expected negative offset clamped to 0, got %d", c.Offset(Primary))
	}
}
