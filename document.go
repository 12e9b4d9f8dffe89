// Package gedcom ties the element tree, parser and encoder together
// into a document-level API: pointer resolution, typed record lists
// and whole-document queries.
package gedcom

import (
	"io"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"
	"github.com/kindredlab/gedcom-format/go-gedcom/encode"
	"github.com/kindredlab/gedcom-format/go-gedcom/parse"
)

// Document is a parsed GEDCOM file: the synthetic root plus an index
// of its records by pointer.
type Document struct {
	root  *element.Element
	index map[string]*element.Element
}

// FromBytes parses d into a Document.
func FromBytes(d []byte, opts ...parse.ParseOption) (*Document, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return FromRoot(root), nil
}

// FromReader parses r into a Document.
func FromReader(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	root, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return FromRoot(root), nil
}

// FromRoot wraps an already-built tree, indexing its top-level records
// by pointer.
func FromRoot(root *element.Element) *Document {
	doc := &Document{root: root, index: map[string]*element.Element{}}
	for _, rec := range root.Children {
		if rec.Pointer != "" {
			doc.index[rec.Pointer] = rec
		}
	}
	return doc
}

// Root returns the synthetic root element.
func (d *Document) Root() *element.Element { return d.root }

// Records returns the document's top-level records in document order.
func (d *Document) Records() []*element.Element { return d.root.Children }

// Resolve returns the record a pointer names, nil when there is none.
// The pointer includes its @ delimiters, e.g. "@I1@".
func (d *Document) Resolve(pointer string) *element.Element {
	return d.index[pointer]
}

// Individuals returns views over the document's INDI records.
func (d *Document) Individuals() []element.Individual {
	var res []element.Individual
	for _, rec := range d.root.Children {
		if ind, ok := element.AsIndividual(rec); ok {
			res = append(res, ind)
		}
	}
	return res
}

// Families returns views over the document's FAM records.
func (d *Document) Families() []element.Family {
	var res []element.Family
	for _, rec := range d.root.Children {
		if fam, ok := element.AsFamily(rec); ok {
			res = append(res, fam)
		}
	}
	return res
}

// Sources returns views over the document's SOUR records.
func (d *Document) Sources() []element.Source {
	var res []element.Source
	for _, rec := range d.root.Children {
		if src, ok := element.AsSource(rec); ok {
			res = append(res, src)
		}
	}
	return res
}

// Header returns the view over the document's HEAD record.
func (d *Document) Header() (element.Header, bool) {
	for _, rec := range d.root.Children {
		if hd, ok := element.AsHeader(rec); ok {
			return hd, true
		}
	}
	return element.Header{}, false
}

// String renders the whole document back to GEDCOM text.
func (d *Document) String() string {
	return encode.MustString(d.root, encode.Recursive(true))
}
