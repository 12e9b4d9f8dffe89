package element

import "github.com/kindredlab/gedcom-format/go-gedcom/tag"

// Kind classifies an element by its record-kind tag. The set is
// closed; any tag outside it maps to GenericKind.
type Kind int

const (
	GenericKind Kind = iota
	FamilyKind
	IndividualKind
	NoteKind
	ObjectKind
	RepositoryKind
	SourceKind
	SubmitterKind
	SubmissionKind
	HeaderKind
)

var kindByTag = map[string]Kind{
	tag.Family:     FamilyKind,
	tag.Individual: IndividualKind,
	tag.Note:       NoteKind,
	tag.Object:     ObjectKind,
	tag.Repository: RepositoryKind,
	tag.Source:     SourceKind,
	tag.Submitter:  SubmitterKind,
	tag.Submission: SubmissionKind,
	tag.Header:     HeaderKind,
}

// KindOf returns the record kind for tg. Unknown tags are not an
// error, they are simply generic.
func KindOf(tg string) Kind { return kindByTag[tg] }

// Kind returns e's record kind.
func (e *Element) Kind() Kind { return KindOf(e.Tag) }

func (k Kind) String() string {
	switch k {
	case FamilyKind:
		return "family"
	case IndividualKind:
		return "individual"
	case NoteKind:
		return "note"
	case ObjectKind:
		return "object"
	case RepositoryKind:
		return "repository"
	case SourceKind:
		return "source"
	case SubmitterKind:
		return "submitter"
	case SubmissionKind:
		return "submission"
	case HeaderKind:
		return "header"
	default:
		return "generic"
	}
}

// childValue returns the logical value of the first child bearing tg,
// or "" when there is none.
func childValue(e *Element, tg string) string {
	for _, c := range e.Children {
		if c.Tag == tg {
			return c.MultiLineValue()
		}
	}
	return ""
}

// childValues returns the raw single-line values of every child
// bearing tg, in document order. Unlike childValue it does not fold;
// the tags it serves carry pointers, which never overflow.
func childValues(e *Element, tg string) []string {
	var res []string
	for _, c := range e.Children {
		if c.Tag == tg {
			res = append(res, c.Value)
		}
	}
	return res
}

func childWithTag(e *Element, tg string) *Element {
	for _, c := range e.Children {
		if c.Tag == tg {
			return c
		}
	}
	return nil
}
