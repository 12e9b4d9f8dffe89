package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"
)

// EncState carries encoding options across one Encode call.
type EncState struct {
	recursive bool

	Color func(element.Kind, Part, string) string
}

// Encode writes el's GEDCOM line to w, followed by its subtree in
// document order when Recursive is set. A synthetic root contributes
// no line of its own, only its descendants.
func Encode(el *element.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(el, w, es)
}

func encode(el *element.Element, w io.Writer, es *EncState) error {
	if err := encodeLine(el, w, es); err != nil {
		return err
	}
	if !es.recursive {
		return nil
	}
	for _, c := range el.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(el *element.Element, w io.Writer, es *EncState) error {
	if el.Level < 0 {
		return nil
	}
	if es.Color == nil {
		return writeString(w, el.String())
	}
	kind := el.Kind()
	b := &strings.Builder{}
	b.WriteString(es.Color(kind, LevelPart, strconv.Itoa(el.Level)))
	if el.Pointer != "" {
		b.WriteByte(' ')
		b.WriteString(es.Color(kind, PointerPart, el.Pointer))
	}
	b.WriteByte(' ')
	b.WriteString(es.Color(kind, TagPart, el.Tag))
	if el.Value != "" {
		b.WriteByte(' ')
		b.WriteString(es.Color(kind, ValuePart, el.Value))
	}
	b.WriteString(el.Terminator())
	return writeString(w, b.String())
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
