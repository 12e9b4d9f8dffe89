package token

type tokenOpts struct {
	strict bool
}

// TokenOpt configures tokenization.
type TokenOpt func(*tokenOpts)

// TokenStrict makes malformed lines an error instead of being dropped,
// and disallows leading whitespace before the level.
func TokenStrict() TokenOpt {
	return func(to *tokenOpts) { to.strict = true }
}
