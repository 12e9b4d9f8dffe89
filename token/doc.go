// Package token turns raw GEDCOM text into (level, pointer, tag,
// value) line tuples. It captures each line's own terminator and
// position, handles byte order marks including UTF-16 input, and
// leaves all tag semantics to its callers.
package token
