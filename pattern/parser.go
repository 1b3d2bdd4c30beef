package pattern

// Pattern is a parsed Liang pattern: an ordered run of characters paired
// with the inter-character priority that precedes each character, plus one
// trailing priority for the slot after the last character.
//
// len(Priorities) == len(Chars) + 1.
type Pattern struct {
	Chars      []rune
	Priorities []byte
}

// maxBMP is the highest code point in the Basic Multilingual Plane.
const maxBMP = 0xFFFF

// Parse converts a Liang-style pattern string such as ".hy3p" into its
// character run and priority vector.
//
// Scanning rule: a pending priority byte starts at 0. Each ASCII digit sets
// the pending priority (it applies to the slot before the next non-digit
// character).
// Every other rune is appended to Chars with the pending priority appended
// to Priorities, and the pending priority resets to 0. A digit with no
// following character still contributes its value to the final trailing
// slot.
func Parse(s string) (Pattern, error) {
	var p Pattern
	pending := byte(0)

	for offset, r := range s {
		if r >= '0' && r <= '9' {
			pending = byte(r - '0')
			continue
		}
		if r > maxBMP {
			return Pattern{}, &MalformedError{Pattern: s, Rune: r, Offset: offset}
		}
		p.Chars = append(p.Chars, r)
		p.Priorities = append(p.Priorities, pending)
		pending = 0
	}

	p.Priorities = append(p.Priorities, pending)
	return p, nil
}
