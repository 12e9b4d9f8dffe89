package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kindredlab/gedcom-format/go-gedcom/debug"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineSource yields tokenized lines from a reader, one Read per line.
type LineSource struct {
	br      *bufio.Reader
	opts    *tokenOpts
	lineNo  int
	started bool
}

// NewLineSource returns a LineSource reading from r.
func NewLineSource(r io.Reader, opts ...TokenOpt) *LineSource {
	to := &tokenOpts{}
	for _, opt := range opts {
		opt(to)
	}
	return &LineSource{br: bufio.NewReader(r), opts: to}
}

// Read returns the next tokenized line, or io.EOF when the source is
// exhausted. In lenient mode blank and malformed lines are skipped.
func (s *LineSource) Read() (Line, error) {
	if !s.started {
		s.started = true
		s.handleBOM()
	}
	for {
		raw, term, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return Line{}, err
		}
		atEOF := errors.Is(err, io.EOF)
		if atEOF && raw == "" {
			return Line{}, io.EOF
		}
		s.lineNo++
		ln, perr := parseLine(raw, s.opts)
		if perr != nil {
			if errors.Is(perr, errBlank) {
				if atEOF {
					return Line{}, io.EOF
				}
				continue
			}
			if s.opts.strict {
				return Line{}, fmt.Errorf("%s: %w", Pos{Line: s.lineNo}, perr)
			}
			if debug.Token() {
				debug.Logf("token: dropping %s: %v\n", Pos{Line: s.lineNo}, perr)
			}
			if atEOF {
				return Line{}, io.EOF
			}
			continue
		}
		ln.Terminator = term
		ln.Pos = Pos{Line: s.lineNo}
		return ln, nil
	}
}

// readLine scans up to the next terminator, recognizing "\n", "\r\n"
// and bare "\r". The terminator is returned separately and is "" only
// at EOF.
func (s *LineSource) readLine() (string, string, error) {
	b := &strings.Builder{}
	for {
		c, err := s.br.ReadByte()
		if err != nil {
			return b.String(), "", err
		}
		switch c {
		case '\n':
			return b.String(), "\n", nil
		case '\r':
			next, err := s.br.ReadByte()
			if err == nil && next == '\n' {
				return b.String(), "\r\n", nil
			}
			if err == nil {
				s.br.UnreadByte()
			}
			return b.String(), "\r", nil
		default:
			b.WriteByte(c)
		}
	}
}

// handleBOM consumes a UTF-8 byte order mark and, for UTF-16 input,
// reroutes the source through a decoder. GEDCOM predates UTF-8
// ubiquity and UTF-16 files are still in circulation.
func (s *LineSource) handleBOM() {
	b, _ := s.br.Peek(3)
	if len(b) >= 3 && b[0] == 0xef && b[1] == 0xbb && b[2] == 0xbf {
		s.br.Discard(3)
		return
	}
	if len(b) >= 2 && (b[0] == 0xff && b[1] == 0xfe || b[0] == 0xfe && b[1] == 0xff) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		s.br = bufio.NewReader(transform.NewReader(s.br, dec))
	}
}

// Tokenize splits d into GEDCOM line tuples.
func Tokenize(d []byte, opts ...TokenOpt) ([]Line, error) {
	src := NewLineSource(bytes.NewReader(d), opts...)
	var res []Line
	for {
		ln, err := src.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, ln)
	}
}
