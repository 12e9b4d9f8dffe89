package element

import "github.com/kindredlab/gedcom-format/go-gedcom/tag"

// The smaller record views. Each is a thin read-only projection over
// the shared Element type; none of them add tree or codec behavior.

// Note is a view over a NOTE record.
type Note struct {
	el *Element
}

func AsNote(e *Element) (Note, bool) {
	if KindOf(e.Tag) != NoteKind {
		return Note{}, false
	}
	return Note{el: e}, true
}

func (n Note) Element() *Element { return n.el }

// Text returns the note's full logical text.
func (n Note) Text() string { return n.el.MultiLineValue() }

// Media is a view over an OBJE record.
type Media struct {
	el *Element
}

func AsMedia(e *Element) (Media, bool) {
	if KindOf(e.Tag) != ObjectKind {
		return Media{}, false
	}
	return Media{el: e}, true
}

func (m Media) Element() *Element { return m.el }
func (m Media) File() string      { return childValue(m.el, tag.File) }
func (m Media) Format() string    { return childValue(m.el, tag.Format) }
func (m Media) Title() string     { return childValue(m.el, tag.Title) }

// Repository is a view over a REPO record.
type Repository struct {
	el *Element
}

func AsRepository(e *Element) (Repository, bool) {
	if KindOf(e.Tag) != RepositoryKind {
		return Repository{}, false
	}
	return Repository{el: e}, true
}

func (r Repository) Element() *Element { return r.el }
func (r Repository) Name() string      { return childValue(r.el, tag.Name) }

// Submitter is a view over a SUBM record.
type Submitter struct {
	el *Element
}

func AsSubmitter(e *Element) (Submitter, bool) {
	if KindOf(e.Tag) != SubmitterKind {
		return Submitter{}, false
	}
	return Submitter{el: e}, true
}

func (s Submitter) Element() *Element { return s.el }
func (s Submitter) Name() string      { return childValue(s.el, tag.Name) }

// Submission is a view over a SUBN record.
type Submission struct {
	el *Element
}

func AsSubmission(e *Element) (Submission, bool) {
	if KindOf(e.Tag) != SubmissionKind {
		return Submission{}, false
	}
	return Submission{el: e}, true
}

func (s Submission) Element() *Element { return s.el }

// SubmitterPointer returns the SUBM pointer of the submission.
func (s Submission) SubmitterPointer() string {
	return childValue(s.el, tag.Submitter)
}

// Header is a view over the HEAD record.
type Header struct {
	el *Element
}

func AsHeader(e *Element) (Header, bool) {
	if KindOf(e.Tag) != HeaderKind {
		return Header{}, false
	}
	return Header{el: e}, true
}

func (h Header) Element() *Element { return h.el }

// CharacterSet returns the declared CHAR encoding, e.g. "UTF-8".
func (h Header) CharacterSet() string {
	return childValue(h.el, tag.CharacterSet)
}

// Version returns the GEDC VERS value.
func (h Header) Version() string {
	gedc := childWithTag(h.el, tag.Gedcom)
	if gedc == nil {
		return ""
	}
	return childValue(gedc, tag.Version)
}
