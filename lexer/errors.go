package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTagSet is returned by Compile when the injected tag
	// registry has no usable names.
	ErrEmptyTagSet = errors.New("empty part-of-speech tag set")
)

// IllegalCharacterError means that no rule of the current lexer state
// matches the input at the cursor. It is fatal for the instance that
// produced it: the same error keeps coming back from Next.
type IllegalCharacterError struct {
	Line      int  // 1-based line of the offending character
	Column    int  // 1-based column of the offending character
	Character rune // first rune of the unmatched sequence
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("illegal character %q at (or sequence from) %d:%d", e.Character, e.Line, e.Column)
}
