package element

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kindredlab/gedcom-format/go-gedcom/tag"
)

// prefixLen is the rendered length of e's line with an empty value:
// level, optional pointer, tag and the separating spaces, including
// the one before the value. The synthetic root has no prefix.
func (e *Element) prefixLen() int {
	if e.Level < 0 {
		return 0
	}
	n := len(strconv.Itoa(e.Level))
	if e.Pointer != "" {
		n += 1 + len(e.Pointer)
	}
	n += 1 + len(e.Tag)
	n++
	return n
}

// availableChars returns how many value characters still fit on e's
// line within tag.MaxLineLen. Recomputed per element since pointer and
// tag lengths vary.
func (e *Element) availableChars() int {
	n := e.prefixLen()
	if n > tag.MaxLineLen {
		return 0
	}
	return tag.MaxLineLen - n
}

// lineLength returns how much of line fits within e's budget. A cut
// that would land inside a multi-byte rune first backs off to the
// rune's start, then, when the cut falls mid-word, backs off over the
// trailing run of spaces. Both scans are bounded by the budget; when
// the entire budget is spaces the cut stays at the rune-adjusted
// budget rather than yielding zero.
func (e *Element) lineLength(line string) int {
	avail := e.availableChars()
	if len(line) <= avail {
		return len(line)
	}
	cut := avail
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	spaces := 0
	for spaces < cut && line[cut-spaces-1] == ' ' {
		spaces++
	}
	if spaces == cut {
		return cut
	}
	return cut - spaces
}

// setBoundedValue installs the longest bounded chunk of v as e's own
// value and reports how many bytes were consumed. A degenerate budget
// of zero still consumes one full rune so splitting always terminates
// and never severs a character, at the cost of overrunning the line
// bound.
func (e *Element) setBoundedValue(v string) int {
	n := e.lineLength(v)
	if n == 0 && v != "" {
		_, n = utf8.DecodeRuneInString(v)
	}
	e.Value = v[:n]
	return n
}

// addConcatenation carries rest on CONC children. Each overflow chunk
// attaches under the previously created child, forming a linear chain
// rather than a flat sibling run.
func (e *Element) addConcatenation(rest string) {
	node := e
	for rest != "" {
		child := &Element{Level: node.Level + 1, Tag: tag.Concatenation, crlf: node.crlf}
		node.AddChildElement(child)
		n := child.setBoundedValue(rest)
		rest = rest[n:]
		node = child
	}
}

// SetMultiLineValue replaces e's logical value. CONC and CONT children
// from any prior call are purged first, preserving the relative order
// of all other children, then value is split at e's terminator into
// physical lines: the first becomes e's own bounded value, each
// further line becomes a CONT child, and per-line overflow goes to
// CONC chains. An empty subsequent line still yields a CONT child, so
// line-break positions survive the round trip. Only e's own terminator
// splits: a foreign terminator embedded in value, say a lone "\n" on a
// "\r\n" element, stays in the value and renders verbatim.
func (e *Element) SetMultiLineValue(value string) {
	kept := make([]*Element, 0, len(e.Children))
	for _, c := range e.Children {
		if c.Tag == tag.Concatenation || c.Tag == tag.Continued {
			continue
		}
		kept = append(kept, c)
	}
	e.Children = kept
	e.Value = ""
	if value == "" {
		return
	}
	lines := strings.Split(value, e.crlf)
	n := e.setBoundedValue(lines[0])
	e.addConcatenation(lines[0][n:])
	for _, line := range lines[1:] {
		child := &Element{Level: e.Level + 1, Tag: tag.Continued, crlf: e.crlf}
		e.AddChildElement(child)
		n := child.setBoundedValue(line)
		child.addConcatenation(line[n:])
	}
}

// MultiLineValue reassembles e's logical value from its own value and
// its CONC/CONT children in document order. CONC content appends with
// no separator, CONT content appends after the most recently seen
// terminator, which after the first reserved child is the child's, not
// the parent's. Children with other tags are skipped without stopping
// the scan. The join is total: it validates nothing and never fails,
// an externally corrupted subtree simply yields what the scan yields.
func (e *Element) MultiLineValue() string {
	v, _ := e.joinValue()
	return v
}

func (e *Element) joinValue() (string, string) {
	result := e.Value
	last := e.crlf
	for _, c := range e.Children {
		switch c.Tag {
		case tag.Concatenation:
			cv, ct := c.joinValue()
			result += cv
			last = ct
		case tag.Continued:
			cv, ct := c.joinValue()
			result += last + cv
			last = ct
		}
	}
	return result, last
}
