// Package hyphen implements Liang's hyphenation scan over a packed
// automaton and exposes the library's public query surface.
package hyphen

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config controls how a Hyphenator reads its input word and reports
// hyphenation points. The zero value is usable: no folding, no edge
// suppression.
type Config struct {
	// Fold, when non-nil, is applied to each rune of the extended word
	// before automaton lookup. It must match whatever folding convention
	// the pattern set was compiled under — DefaultConfig lowercases under
	// the root locale, matching the shipped pattern data.
	Fold func(r rune) rune

	// MinLeft and MinRight suppress points reported by Points() that are
	// closer than this many characters to the start or end of the word.
	// They do not affect Hyphenate's raw priority vector. Zero disables
	// the corresponding suppression.
	MinLeft, MinRight int
}

// DefaultConfig returns a Config that lowercases under the root locale
// before lookup and applies no edge suppression.
func DefaultConfig() Config {
	fold := cases.Lower(language.Und)
	return Config{Fold: func(r rune) rune {
		lowered := fold.String(string(r))
		for _, out := range lowered {
			return out
		}
		return r
	}}
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.MinLeft < 0 {
		return &ConfigError{Field: "MinLeft", Message: "must be >= 0"}
	}
	if c.MinRight < 0 {
		return &ConfigError{Field: "MinRight", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hyphen: invalid config: %s: %s", e.Field, e.Message)
}
