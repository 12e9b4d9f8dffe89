// Package element models one GEDCOM line and the tree those lines
// form.
//
// A GEDCOM file is a sequence of level-tagged lines:
//
//	LEVEL [POINTER] TAG [VALUE]
//
// where LEVEL is a non-negative decimal, POINTER is an optional
// @-delimited cross-reference label, TAG names the field, and VALUE is
// free text running to end of line. Lines nest by level: a line at
// level n+1 is a child of the nearest preceding line at level n. The
// synthetic document root sits above level 0 with a negative level and
// never serializes itself.
//
// Values longer than the per-line budget (tag.MaxLineLen, prefix
// included) are carried across child lines bearing the reserved CONC
// (same physical line continues) and CONT (new physical line) tags.
// SetMultiLineValue splits a logical value into that form and
// MultiLineValue folds it back; splitting then joining is the
// identity.
//
// Record-kind tags (INDI, FAM, SOUR, ...) share the Element type.
// Kind-specific read access is provided by separate views, e.g.
// AsIndividual, AsSource.
package element
