package token

import "errors"

var (
	ErrLine  = errors.New("malformed line")
	ErrLevel = errors.New("bad level")

	errBlank = errors.New("blank line")
)
