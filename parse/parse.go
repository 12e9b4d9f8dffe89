package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/kindredlab/gedcom-format/go-gedcom/debug"
	"github.com/kindredlab/gedcom-format/go-gedcom/element"
	"github.com/kindredlab/gedcom-format/go-gedcom/token"
)

// Parse builds an element tree from GEDCOM text. The returned element
// is the synthetic root; the document's records are its children.
func Parse(d []byte, opts ...ParseOption) (*element.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines, err := token.Tokenize(d, pOpts.TokenOpts()...)
	if err != nil {
		return nil, err
	}
	b := newBuilder(pOpts)
	for _, ln := range lines {
		if err := b.add(ln); err != nil {
			return nil, err
		}
	}
	return b.root, nil
}

// ParseReader is Parse over a stream.
func ParseReader(r io.Reader, opts ...ParseOption) (*element.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	src := token.NewLineSource(r, pOpts.TokenOpts()...)
	b := newBuilder(pOpts)
	for {
		ln, err := src.Read()
		if errors.Is(err, io.EOF) {
			return b.root, nil
		}
		if err != nil {
			return nil, err
		}
		if err := b.add(ln); err != nil {
			return nil, err
		}
	}
}

type builder struct {
	root *element.Element
	cur  *element.Element
	opts *parseOpts
}

func newBuilder(po *parseOpts) *builder {
	term := po.terminator
	if term == "" {
		term = "\n"
	}
	root := element.NewRoot(element.WithTerminator(term))
	return &builder{root: root, cur: root, opts: po}
}

// add attaches one tokenized line below the nearest open ancestor. A
// level that jumps past the current nesting is an error in strict
// mode and is clamped to the deepest attachable level otherwise.
func (b *builder) add(ln token.Line) error {
	level := ln.Level
	if level > b.cur.Level+1 {
		if b.opts.strict {
			return fmt.Errorf("%w: %s: level %d skips %d", ErrParse, ln.Pos, level, b.cur.Level+1)
		}
		level = b.cur.Level + 1
	}
	for b.cur.Level >= level {
		b.cur = b.cur.Parent
	}
	term := b.opts.terminator
	if term == "" {
		term = ln.Terminator
	}
	if term == "" {
		// final line with no newline
		term = b.cur.Terminator()
	}
	el := element.New(level, ln.Pointer, ln.Tag, ln.Value, element.WithTerminator(term))
	b.cur.AddChildElement(el)
	b.cur = el
	if debug.Parse() {
		debug.Logf("parse: %s: attached %s under %s\n", ln.Pos, el.Tag, el.Parent.Tag)
	}
	return nil
}
