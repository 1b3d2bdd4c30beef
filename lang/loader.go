// Package lang loads the hyphenation pattern sets shipped with this
// module, keyed by BCP 47 language tag.
package lang

import (
	"bufio"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/coreliang/hyphen"
	"github.com/coreliang/hyphen/internal/data"
)

var cache = newCache()

// Load parses and compiles the shipped pattern set for tag's base
// language, returning a ready-to-use Hyphenator. Repeated calls for the
// same tag return the same cached Hyphenator.
func Load(tag language.Tag) (*hyphen.Hyphenator, error) {
	return LoadFS(data.FS, tag)
}

// MustLoad is like Load but panics on error. Callers typically use it at
// program init for a language tag known ahead of time to be shipped.
func MustLoad(tag language.Tag) *hyphen.Hyphenator {
	h, err := Load(tag)
	if err != nil {
		panic(err)
	}
	return h
}

// LoadFS is Load against an arbitrary asset filesystem laid out the same
// way as package data: patterns/<base>.patterns, and optionally
// patterns/<base>.exceptions.
func LoadFS(fsys fs.FS, tag language.Tag) (*hyphen.Hyphenator, error) {
	return cache.getOrCompile(tag, func() (*hyphen.Hyphenator, error) {
		base, _ := tag.Base()
		patternLines, err := readLines(fsys, "patterns/"+base.String()+".patterns")
		if err != nil {
			return nil, &MissingResourceError{Tag: tag, Available: AvailableFS(fsys)}
		}
		exceptionLines, _ := readLines(fsys, "patterns/"+base.String()+".exceptions")
		return hyphen.New(patternLines, exceptionLines)
	})
}

// Available returns the base language tags with shipped pattern data, in
// ascending order.
func Available() []language.Tag {
	return AvailableFS(data.FS)
}

// AvailableFS is Available against an arbitrary asset filesystem.
func AvailableFS(fsys fs.FS) []language.Tag {
	entries, err := fs.ReadDir(fsys, "patterns")
	if err != nil {
		return nil
	}

	var tags []language.Tag
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".patterns") {
			continue
		}
		tags = append(tags, language.Make(strings.TrimSuffix(name, ".patterns")))
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}

func readLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
