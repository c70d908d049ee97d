package nav

import "testing"

func TestHasChildren(t *testing.T) {
	leaf := Item{ID: "intro", Target: "intro.md"}
	if leaf.HasChildren() {
		t.Fatalf("expected leaf item to have no children")
	}
	group := Item{ID: "guides", Children: []Item{{ID: "guides:a"}}}
	if !group.HasChildren() {
		t.Fatalf("expected group item to have children")
	}
}

func TestCloneItemsIsIndependent(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}
	dup := CloneItems(items)
	dup[0].ID = "changed"
	if items[0].ID != "a" {
		t.Fatalf("expected clone to leave the original untouched, got %q", items[0].ID)
	}
	if len(CloneItems(nil)) != 0 {
		t.Fatalf("expected empty clone for nil input")
	}
}

func TestFindByID(t *testing.T) {
	items := []Item{
		{ID: "intro", Target: "intro.md"},
		{ID: "guides", Children: []Item{
			{ID: "guides:install", Target: "guides/install.md"},
		}},
	}
	if item, ok := FindByID(items, "intro"); !ok || item.Target != "intro.md" {
		t.Fatalf("expected top-level hit, got %#v ok=%v", item, ok)
	}
	if item, ok := FindByID(items, "guides:install"); !ok || item.Target != "guides/install.md" {
		t.Fatalf("expected nested hit, got %#v ok=%v", item, ok)
	}
	if _, ok := FindByID(items, "missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := FindByID(items, ""); ok {
		t.Fatalf("expected miss for empty id")
	}
}
