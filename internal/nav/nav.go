// Package nav defines the navigation item descriptors consumed by the shell.
// Items come either from the site config file or from a docs directory scan;
// only one level of children is supported.
package nav

// Item represents a navigable entry: a link to a lesson, or a group with one
// level of child links.
type Item struct {
	ID       string
	Label    string
	Target   string
	Children []Item
}

// HasChildren reports whether the item opens a submenu rather than a target.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// FindByID returns the item with the given id, searching one level deep.
func FindByID(items []Item, id string) (Item, bool) {
	if id == "" {
		return Item{}, false
	}
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
		for _, child := range item.Children {
			if child.ID == id {
				return child, true
			}
		}
	}
	return Item{}, false
}
