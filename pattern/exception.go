package pattern

import "strings"

// RewriteException converts a hyphenated exception word such as
// "uni-ver-sity" into the pattern shorthand ".u8n8i9v8e8r9s8i8t8y." — a
// leading and trailing word-boundary marker, priority 9 at every slot that
// followed a hyphen in the input, and priority 8 at every other internal
// slot. Leading and trailing slots (adjacent to the boundary markers)
// are left at priority 0.
//
// Adjacent hyphens collapse to a single priority-9 marker: a hyphen only
// ever raises the priority of the slot before the next letter.
func RewriteException(word string) string {
	var b strings.Builder
	b.WriteByte('.')

	afterHyphen := false
	first := true
	for _, r := range word {
		if r == '-' {
			afterHyphen = true
			continue
		}
		if !first {
			if afterHyphen {
				b.WriteByte('9')
			} else {
				b.WriteByte('8')
			}
		}
		b.WriteRune(r)
		first = false
		afterHyphen = false
	}

	b.WriteByte('.')
	return b.String()
}

// ParseException rewrites and parses a hyphenated exception word in one
// step.
func ParseException(word string) (Pattern, error) {
	return Parse(RewriteException(word))
}
