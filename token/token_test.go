package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	doc := "0 HEAD\n" +
		"1 GEDC\r\n" +
		"0 @I1@ INDI\n" +
		"1 NAME John /Smith/\n" +
		"\n" +
		"0 TRLR"
	lines, err := Tokenize([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{Level: 0, Tag: "HEAD", Terminator: "\n", Pos: Pos{Line: 1}},
		{Level: 1, Tag: "GEDC", Terminator: "\r\n", Pos: Pos{Line: 2}},
		{Level: 0, Pointer: "@I1@", Tag: "INDI", Terminator: "\n", Pos: Pos{Line: 3}},
		{Level: 1, Tag: "NAME", Value: "John /Smith/", Terminator: "\n", Pos: Pos{Line: 4}},
		{Level: 0, Tag: "TRLR", Pos: Pos{Line: 6}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestTokenizeBareCR(t *testing.T) {
	lines, err := Tokenize([]byte("0 HEAD\r1 CHAR ASCII\r"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines: %d", len(lines))
	}
	if lines[0].Terminator != "\r" || lines[1].Terminator != "\r" {
		t.Errorf("terminators %q %q", lines[0].Terminator, lines[1].Terminator)
	}
	if lines[1].Tag != "CHAR" || lines[1].Value != "ASCII" {
		t.Errorf("line %+v", lines[1])
	}
}

func TestTokenizeLenient(t *testing.T) {
	doc := "  0 HEAD\n" + // leading whitespace tolerated
		"junk\n" + // dropped
		"0 TRLR\n"
	lines, err := Tokenize([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, ln := range lines {
		tags = append(tags, ln.Tag)
	}
	if diff := cmp.Diff([]string{"HEAD", "TRLR"}, tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestTokenizeStrict(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"x HEAD\n", ErrLevel},
		{"  0 HEAD\n", ErrLevel},
		{"0\n", ErrLine},
		{"0 @I1 INDI\n", ErrLine},
		{"0 @I1@\n", ErrLine},
	}
	for _, tc := range tests {
		_, err := Tokenize([]byte(tc.in), TokenStrict())
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%q: err %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestTokenizeValueWithPointerSyntax(t *testing.T) {
	lines, err := Tokenize([]byte("1 FAMS @F1@\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Pointer != "" || lines[0].Value != "@F1@" {
		t.Errorf("line %+v", lines[0])
	}
}

func TestTokenizeUTF8BOM(t *testing.T) {
	doc := append([]byte{0xef, 0xbb, 0xbf}, []byte("0 HEAD\n")...)
	lines, err := Tokenize(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Tag != "HEAD" {
		t.Errorf("lines %+v", lines)
	}
}

func TestTokenizeUTF16BOM(t *testing.T) {
	// "0 HEAD\n" in UTF-16LE with BOM
	src := "0 HEAD\n"
	d := []byte{0xff, 0xfe}
	for _, r := range src {
		d = append(d, byte(r), 0)
	}
	lines, err := Tokenize(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Tag != "HEAD" || lines[0].Level != 0 {
		t.Errorf("lines %+v", lines)
	}
}
