// Package docs indexes the markdown lesson tree and keeps the navigation
// sections current while files change on disk.
package docs

import "github.com/anditko/docnav/internal/nav"

// SectionStore holds the current navigation sections derived from the docs
// directory (or supplied by the site config).
type SectionStore interface {
	Sections() []nav.Item
	SetSections([]nav.Item)
}

type sectionStore struct {
	sections []nav.Item
}

// NewSectionStore returns an empty section store.
func NewSectionStore() SectionStore {
	return &sectionStore{}
}

func (s *sectionStore) Sections() []nav.Item {
	return nav.CloneItems(s.sections)
}

func (s *sectionStore) SetSections(sections []nav.Item) {
	s.sections = nav.CloneItems(sections)
}
