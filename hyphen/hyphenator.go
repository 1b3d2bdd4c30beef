package hyphen

import (
	"github.com/coreliang/hyphen/automaton"
	"github.com/coreliang/hyphen/pattern"
	"github.com/coreliang/hyphen/trie"
)

// Hyphenator is the compiled, concurrency-safe query object. Once built or
// loaded it is immutable; Hyphenate and Points may be called concurrently
// from multiple goroutines.
type Hyphenator struct {
	automaton *automaton.Automaton
	config    Config
}

// New builds a Hyphenator from raw Liang pattern strings and hyphenated
// exception words, using DefaultConfig.
func New(patterns, exceptions []string) (*Hyphenator, error) {
	return NewWithConfig(patterns, exceptions, DefaultConfig())
}

// NewWithConfig builds a Hyphenator from raw Liang pattern strings and
// hyphenated exception words under the given Config.
func NewWithConfig(patterns, exceptions []string, cfg Config) (*Hyphenator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := trie.NewRoot()
	for _, s := range patterns {
		p, err := pattern.Parse(s)
		if err != nil {
			return nil, err
		}
		trie.Insert(root, p)
	}
	for _, word := range exceptions {
		p, err := pattern.ParseException(word)
		if err != nil {
			return nil, err
		}
		trie.Insert(root, p)
	}

	canonical := trie.NewCompressor().Compress(root)
	a, err := automaton.Pack(canonical)
	if err != nil {
		return nil, err
	}

	return FromAutomaton(a, cfg), nil
}

// FromAutomaton wraps an already-built or deserialized Automaton in a
// Hyphenator, for example one read back with serialize.Decode, without
// recompiling the pattern set.
func FromAutomaton(a *automaton.Automaton, cfg Config) *Hyphenator {
	return &Hyphenator{automaton: a, config: cfg}
}

// Hyphenate returns the raw priority vector for word: a byte array of
// length max(0, n-1), where n is the number of runes in word and
// priorities[i] is the strongest priority known for the slot between the
// i-th and (i+1)-th rune.
func (h *Hyphenator) Hyphenate(word string) []byte {
	return scan(h.automaton, word, h.config.Fold)
}

// Points returns the indices i where Hyphenate(word)[i] is odd — the
// positions at which a break is permitted — after suppressing any points
// closer than Config.MinLeft/MinRight to either edge of the word.
func (h *Hyphenator) Points(word string) []int {
	p := h.Hyphenate(word)
	runeCount := len([]rune(word))

	var points []int
	for i, v := range p {
		if v%2 == 0 {
			continue
		}
		if i+1 < h.config.MinLeft {
			continue
		}
		if runeCount-(i+1) < h.config.MinRight {
			continue
		}
		points = append(points, i)
	}
	return points
}
