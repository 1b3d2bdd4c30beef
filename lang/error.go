package lang

import (
	"fmt"

	"golang.org/x/text/language"
)

// MissingResourceError reports that no shipped pattern set matches tag's
// base language.
type MissingResourceError struct {
	Tag       language.Tag
	Available []language.Tag
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("lang: no shipped hyphenation data for %q (have %v)", e.Tag, e.Available)
}
