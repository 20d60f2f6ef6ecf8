// Package args exposes command-line tokens as a one-pass cursor so callers
// consume them strictly in order, the same way for os.Args or a generated
// token source.
package args

// Cursor is an advance-and-fetch view over an ordered token sequence.
type Cursor interface {
	// Next returns the next token and true, or "" and false once the
	// sequence is exhausted.
	Next() (string, bool)
	// Remaining reports how many tokens Next has not yet returned.
	Remaining() int
}

// SliceCursor walks a fixed slice of tokens.
type SliceCursor struct {
	tokens []string
	pos    int
}

// FromSlice returns a cursor over tokens. The slice is not copied and must
// not be modified while the cursor is in use.
func FromSlice(tokens []string) *SliceCursor {
	return &SliceCursor{tokens: tokens}
}

func (c *SliceCursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

func (c *SliceCursor) Remaining() int {
	return len(c.tokens) - c.pos
}
