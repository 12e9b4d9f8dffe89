package encode

// EncodeOption configures an Encode call.
type EncodeOption func(*EncState)

// Recursive makes Encode render el's whole subtree in document order
// rather than the single line.
func Recursive(v bool) EncodeOption {
	return func(es *EncState) { es.recursive = v }
}

// EncodeColors installs a color scheme for terminal output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
