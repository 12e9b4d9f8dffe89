package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one tokenized GEDCOM line.
type Line struct {
	Level   int
	Pointer string
	Tag     string
	Value   string

	// Terminator is the newline sequence that ended this line in the
	// source, or "" for a final line with none.
	Terminator string

	Pos Pos
}

// parseLine splits one raw line (terminator already removed) into its
// level, pointer, tag and value. Blank lines report errBlank.
func parseLine(raw string, to *tokenOpts) (Line, error) {
	s := raw
	if !to.strict {
		s = strings.TrimLeft(s, " \t")
	}
	if s == "" {
		return Line{}, errBlank
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return Line{}, fmt.Errorf("%w: %q", ErrLevel, raw)
	}
	level, err := strconv.Atoi(s[:i])
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q", ErrLevel, raw)
	}
	if i >= len(s) || s[i] != ' ' {
		return Line{}, fmt.Errorf("%w: no tag after level: %q", ErrLine, raw)
	}
	s = s[i+1:]

	pointer := ""
	if len(s) > 0 && s[0] == '@' {
		end := strings.IndexByte(s[1:], '@')
		if end < 0 {
			return Line{}, fmt.Errorf("%w: unterminated pointer: %q", ErrLine, raw)
		}
		pointer = s[:end+2]
		s = s[end+2:]
		if len(s) == 0 || s[0] != ' ' {
			return Line{}, fmt.Errorf("%w: no tag after pointer: %q", ErrLine, raw)
		}
		s = s[1:]
	}

	var tg, value string
	if sp := strings.IndexByte(s, ' '); sp < 0 {
		tg = s
	} else {
		tg, value = s[:sp], s[sp+1:]
	}
	if tg == "" {
		return Line{}, fmt.Errorf("%w: empty tag: %q", ErrLine, raw)
	}
	return Line{Level: level, Pointer: pointer, Tag: tg, Value: value}, nil
}
