package scan

import (
	"errors"
	"fmt"
)

// ErrEndOfInput reports that the input ran out while a Require obligation
// was still outstanding.
var ErrEndOfInput = errors.New("unexpected end of input")

// InvalidCharacterError reports a character that cannot extend a required
// match. Cursor is the offset of the offending character in the original
// input, counted in characters.
type InvalidCharacterError struct {
	Cursor int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character at position %d", e.Cursor)
}
