package lang

import (
	"golang.org/x/text/language"

	"github.com/coreliang/hyphen"
)

// Resolve finds the best available shipped language for tag using standard
// BCP 47 matching, falling back through less specific tags (e.g. "en-GB"
// resolves to "en" when only "en" is shipped), and returns the compiled
// Hyphenator for that match along with the tag it resolved to. A tag with
// no acceptable match fails with a *MissingResourceError.
func Resolve(tag language.Tag) (language.Tag, *hyphen.Hyphenator, error) {
	available := Available()
	if len(available) == 0 {
		return language.Und, nil, &MissingResourceError{Tag: tag}
	}

	matcher := language.NewMatcher(available)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, nil, &MissingResourceError{Tag: tag, Available: available}
	}
	resolved := available[idx]

	h, err := Load(resolved)
	if err != nil {
		return language.Und, nil, err
	}
	return resolved, h, nil
}
