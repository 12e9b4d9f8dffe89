package parse

import "github.com/kindredlab/gedcom-format/go-gedcom/token"

type parseOpts struct {
	strict     bool
	terminator string
}

// ParseOption configures a Parse call.
type ParseOption func(*parseOpts)

// Strict rejects malformed lines and level jumps instead of repairing
// them.
func Strict() ParseOption {
	return func(po *parseOpts) { po.strict = true }
}

// WithTerminator overrides the per-line terminators read from the
// source, normalizing every element to term.
func WithTerminator(term string) ParseOption {
	return func(po *parseOpts) { po.terminator = term }
}

func (po *parseOpts) TokenOpts() []token.TokenOpt {
	if po.strict {
		return []token.TokenOpt{token.TokenStrict()}
	}
	return nil
}
