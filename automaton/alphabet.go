package automaton

import (
	"sort"

	"github.com/coreliang/hyphen/trie"
)

// CollectAlphabet walks the canonical node set once, collecting every
// distinct character label — including the root's own (unused) label — and
// assigns each its ascending-code-point-order position as its dense
// alphabet index. It returns the resulting CharMap and the alphabet size.
func CollectAlphabet(root *trie.Node) (CharMap, int) {
	nodes := enumerate(root)

	seen := make(map[rune]bool, len(nodes))
	var chars []rune
	for _, n := range nodes {
		if !seen[n.Char] {
			seen[n.Char] = true
			chars = append(chars, n.Char)
		}
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	m := newCharMap()
	for i, c := range chars {
		m.index[c] = int32(i)
	}
	return m, len(chars)
}
