// Package parse builds element trees from GEDCOM text.
//
// Lines arrive from the token package as (level, pointer, tag, value)
// tuples and are attached under a synthetic root by level nesting.
// Values pass through the element package's multi-line codec, so a
// value carrying embedded terminators or exceeding the line budget is
// stored pre-split. Parsing is lenient by default: malformed lines are
// dropped and level jumps clamped rather than rejected.
package parse
