package hyphen

import (
	"reflect"
	"testing"

	"github.com/coreliang/hyphen/pattern"
)

// referenceHyphenate is a brute-force, automaton-free reimplementation of
// Liang's scan: it slides every pattern's character sequence across the
// boundary-extended word and merges matches by element-wise max. It exists
// purely to check the packed-automaton engine against an independently
// written implementation of the same rule.
func referenceHyphenate(patterns, exceptions []string, word string, fold func(rune) rune) []byte {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}

	extended := make([]rune, 0, len(runes)+2)
	extended = append(extended, '.')
	for _, r := range runes {
		if fold != nil {
			r = fold(r)
		}
		extended = append(extended, r)
	}
	extended = append(extended, '.')

	var parsed []pattern.Pattern
	for _, s := range patterns {
		p, err := pattern.Parse(s)
		if err != nil {
			continue
		}
		parsed = append(parsed, p)
	}
	for _, w := range exceptions {
		p, err := pattern.ParseException(w)
		if err != nil {
			continue
		}
		parsed = append(parsed, p)
	}

	out := make([]byte, len(runes)-1)
	for _, p := range parsed {
		if len(p.Chars) == 0 {
			continue
		}
		for i := 0; i+len(p.Chars) <= len(extended); i++ {
			if !runesEqual(extended[i:i+len(p.Chars)], p.Chars) {
				continue
			}
			for j, val := range p.Priorities {
				k := i + j - 2
				if k < 0 || k >= len(out) {
					continue
				}
				if val > out[k] {
					out[k] = val
				}
			}
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngineMatchesReferenceScan(t *testing.T) {
	patternSets := [][]string{
		{".hy3p"},
		{".a1b"},
		{"1a"},
		{".hy3p", "1ba", "2bb", "3ence.", "5ing."},
		{".dis3", "1ma", "1ni", "2ss", "5ment."},
	}
	exceptionSets := [][]string{
		nil,
		{"uni-ver-sity"},
	}
	words := []string{
		"hyphenation", "ab", "aa", "abba", "dismissal", "university",
		"programming", "a", "", "xx", "consonant",
	}

	for _, patterns := range patternSets {
		for _, exceptions := range exceptionSets {
			h, err := New(patterns, exceptions)
			if err != nil {
				t.Fatalf("New(%v, %v): %v", patterns, exceptions, err)
			}
			for _, word := range words {
				got := h.Hyphenate(word)
				want := referenceHyphenate(patterns, exceptions, word, h.config.Fold)
				if !reflect.DeepEqual(got, want) {
					t.Errorf("patterns=%v exceptions=%v word=%q: Hyphenate=%v, reference=%v",
						patterns, exceptions, word, got, want)
				}
			}
		}
	}
}

func FuzzEngineMatchesReference(f *testing.F) {
	seeds := []string{"hyphenation", "ab", "a", "", "university", "xyz", "aaaa"}
	for _, s := range seeds {
		f.Add(s)
	}

	patterns := []string{".hy3p", "1ba", "2bb", "3ence.", "5ing.", "1a", ".a1b"}
	h, err := New(patterns, nil)
	if err != nil {
		f.Fatalf("New: %v", err)
	}

	f.Fuzz(func(t *testing.T, word string) {
		got := h.Hyphenate(word)
		want := referenceHyphenate(patterns, nil, word, h.config.Fold)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("word=%q: Hyphenate=%v, reference=%v", word, got, want)
		}

		runeCount := len([]rune(word))
		wantLen := runeCount - 1
		if wantLen < 0 {
			wantLen = 0
		}
		if len(got) != wantLen {
			t.Fatalf("word=%q: len(Hyphenate)=%d, want %d", word, len(got), wantLen)
		}
	})
}
