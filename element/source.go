package element

import "github.com/kindredlab/gedcom-format/go-gedcom/tag"

// Source is a read-only view over a SOUR record.
type Source struct {
	el *Element
}

// AsSource returns a Source view of e when e bears the SOUR tag.
func AsSource(e *Element) (Source, bool) {
	if KindOf(e.Tag) != SourceKind {
		return Source{}, false
	}
	return Source{el: e}, true
}

// Element returns the underlying element.
func (s Source) Element() *Element { return s.el }

// Title returns the title of the source, folded from its TITL line.
func (s Source) Title() string {
	return childValue(s.el, tag.Title)
}

// Abbreviation returns the abbreviated title of a master source.
func (s Source) Abbreviation() string {
	return childValue(s.el, tag.Abbreviation)
}

// Author returns the AUTH field.
func (s Source) Author() string {
	return childValue(s.el, tag.Author)
}

// Publication returns the PUBL field.
func (s Source) Publication() string {
	return childValue(s.el, tag.Publication)
}

// Reference returns the user reference number (REFN).
func (s Source) Reference() string {
	return childValue(s.el, tag.Reference)
}

// RepositoryPointer returns the pointer to the source's repository.
func (s Source) RepositoryPointer() string {
	return childValue(s.el, tag.Repository)
}
