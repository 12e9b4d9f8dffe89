package encode

import (
	"bytes"

	"github.com/kindredlab/gedcom-format/go-gedcom/element"
)

// String renders el to a string.
func String(el *element.Element, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(el, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders el to a string and panics on a write error, which
// bytes.Buffer never produces.
func MustString(el *element.Element, opts ...EncodeOption) string {
	res, err := String(el, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
