package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/kindredlab/gedcom-format/go-gedcom/encode"
	"github.com/kindredlab/gedcom-format/go-gedcom/tag"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `0 HEAD
1 GEDC
2 VERS 5.5
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
0 @N1@ NOTE First line
1 CONT Second line
1 CONC  and more
0 TRLR
`

func TestParseStructure(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if root.Level >= 0 {
		t.Errorf("root level %d", root.Level)
	}
	var tags []string
	for _, rec := range root.Children {
		tags = append(tags, rec.Tag)
	}
	want := []string{tag.Header, tag.Individual, tag.Note, tag.Trailer}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}

	head := root.Children[0]
	if len(head.Children) != 2 {
		t.Fatalf("HEAD children: %d", len(head.Children))
	}
	gedc := head.Children[0]
	if gedc.Tag != tag.Gedcom || len(gedc.Children) != 1 {
		t.Errorf("GEDC subtree wrong: %+v", gedc)
	}
	if gedc.Children[0].Value != "5.5" {
		t.Errorf("VERS %q", gedc.Children[0].Value)
	}
}

func TestParseMultiLineFolding(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	note := root.Children[2]
	if note.Tag != tag.Note {
		t.Fatalf("not a note: %s", note.Tag)
	}
	want := "First line\nSecond line and more"
	if got := note.MultiLineValue(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(root, encode.Recursive(true))
	if got != sampleDoc {
		t.Errorf("round trip:\ngot:\n%s\nwant:\n%s", got, sampleDoc)
	}
}

func TestParsePreservesTerminators(t *testing.T) {
	doc := "0 HEAD\r\n1 CHAR ASCII\n"
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(root, encode.Recursive(true))
	if got != doc {
		t.Errorf("got %q, want %q", got, doc)
	}
}

func TestParseTerminatorOverride(t *testing.T) {
	doc := "0 HEAD\r\n1 CHAR ASCII\r\n"
	root, err := Parse([]byte(doc), WithTerminator("\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(root, encode.Recursive(true))
	if got != "0 HEAD\n1 CHAR ASCII\n" {
		t.Errorf("got %q", got)
	}
}

func TestParseLevelJump(t *testing.T) {
	doc := "0 HEAD\n2 GEDC\n"

	if _, err := Parse([]byte(doc), Strict()); !errors.Is(err, ErrParse) {
		t.Errorf("strict: err %v, want %v", err, ErrParse)
	}

	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	head := root.Children[0]
	if len(head.Children) != 1 || head.Children[0].Level != 1 {
		t.Errorf("jump not clamped: %+v", head.Children)
	}
}

func TestParseOversizedValue(t *testing.T) {
	// a malformed source line beyond the budget is preserved, split
	// into CONC structure
	long := strings.Repeat("a", 400)
	root, err := Parse([]byte("0 NOTE " + long + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	note := root.Children[0]
	if got := note.MultiLineValue(); got != long {
		t.Errorf("value lost: %d chars", len(got))
	}
	if len(note.Children) == 0 {
		t.Error("no CONC children generated")
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(root, encode.Recursive(true))
	if got != sampleDoc {
		t.Errorf("reader parse differs from byte parse")
	}
}

func TestParseFinalLineNoTerminator(t *testing.T) {
	root, err := Parse([]byte("0 HEAD\n0 TRLR"))
	if err != nil {
		t.Fatal(err)
	}
	trlr := root.Children[1]
	if trlr.Terminator() != "\n" {
		t.Errorf("terminator %q, want inherited newline", trlr.Terminator())
	}
}
