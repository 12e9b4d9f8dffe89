package element

import (
	"strconv"
	"strings"

	"github.com/kindredlab/gedcom-format/go-gedcom/tag"
)

// Element is one GEDCOM line together with the subtree of lines nested
// below it. Children is in document order; mutating it directly
// bypasses the parent backreference, use AddChildElement instead.
type Element struct {
	Level   int
	Pointer string
	Tag     string
	Value   string

	Children []*Element
	Parent   *Element

	crlf string
}

// Option configures an Element at construction.
type Option func(*Element)

// WithTerminator sets the line terminator the element renders and
// joins with. Terminators are per element, not per document, because
// source files may mix them.
func WithTerminator(term string) Option {
	return func(e *Element) { e.crlf = term }
}

// New returns an unattached element. The value is routed through the
// multi-line codec, so an oversized or embedded-terminator value
// arrives already split into CONC/CONT children.
func New(level int, pointer, tg, value string, opts ...Option) *Element {
	e := &Element{Level: level, Pointer: pointer, Tag: tg, crlf: "\n"}
	for _, opt := range opts {
		opt(e)
	}
	e.SetMultiLineValue(value)
	return e
}

// NewRoot returns the synthetic document root. Its level is negative
// so it renders nothing itself, only its descendants.
func NewRoot(opts ...Option) *Element {
	e := &Element{Level: -1, Tag: tag.Root, crlf: "\n"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Terminator returns the line terminator this element was constructed
// with.
func (e *Element) Terminator() string { return e.crlf }

// SetTerminator changes this element's terminator. It does not touch
// children.
func (e *Element) SetTerminator(term string) { e.crlf = term }

// AddChildElement appends child to e's children and sets its parent
// backreference. Attaching is a single operation; re-attaching an
// element that already has a parent is unsupported.
func (e *Element) AddChildElement(child *Element) *Element {
	e.Children = append(e.Children, child)
	child.Parent = e
	return child
}

// NewChildElement creates an element one level below e with the given
// tag, pointer and value, inheriting e's terminator, and attaches it.
func (e *Element) NewChildElement(tg, pointer, value string) *Element {
	child := New(e.Level+1, pointer, tg, value, WithTerminator(e.crlf))
	return e.AddChildElement(child)
}

// Visit walks e's subtree in document order. f runs twice per element,
// pre and post order; returning false from the pre call skips the
// element's children.
func (e *Element) Visit(f func(e *Element, isPost bool) (bool, error)) error {
	dive, err := f(e, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range e.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(e, true); err != nil {
		return err
	}
	return nil
}

// Root returns the topmost ancestor of e.
func (e *Element) Root() *Element {
	res := e
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// String renders e as a single GEDCOM line, terminator included. The
// synthetic root renders as the empty string.
func (e *Element) String() string {
	if e.Level < 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(strconv.Itoa(e.Level))
	if e.Pointer != "" {
		b.WriteByte(' ')
		b.WriteString(e.Pointer)
	}
	b.WriteByte(' ')
	b.WriteString(e.Tag)
	if e.Value != "" {
		b.WriteByte(' ')
		b.WriteString(e.Value)
	}
	b.WriteString(e.crlf)
	return b.String()
}
