// Package pattern parses Liang-style hyphenation pattern strings and
// rewrites hyphenated exception words into the same shorthand.
package pattern

import "fmt"

// MalformedError reports a pattern character that the parser cannot accept.
//
// The parser is otherwise total: every ASCII digit is a priority marker and
// every other character, including the word boundary marker '.', is a valid
// pattern character. The only hard failure is a code point outside the
// Basic Multilingual Plane, which this library does not support.
type MalformedError struct {
	Pattern string
	Rune    rune
	Offset  int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("pattern %q: rune %q at offset %d is outside the Basic Multilingual Plane", e.Pattern, e.Rune, e.Offset)
}
