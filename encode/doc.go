// Package encode renders element trees back into GEDCOM wire text.
//
// Encoding is pure: it mutates nothing and writes exactly the lines
// the tree holds, each terminated by its element's own terminator.
package encode
