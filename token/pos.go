package token

import "strconv"

// Pos locates a tokenized line within its source document.
type Pos struct {
	Line int // 1-based
}

func (p Pos) String() string {
	return "line " + strconv.Itoa(p.Line)
}
