package automaton

import "github.com/coreliang/hyphen/trie"

// enumerate walks the canonical node set reachable from root and returns
// each distinct node exactly once, root first. Both the alphabet collector
// and the packer rely on this single traversal order so that "node identity
// → state index" stays stable across the two passes.
func enumerate(root *trie.Node) []*trie.Node {
	var order []*trie.Node
	visited := make(map[*trie.Node]bool)

	var visit func(n *trie.Node)
	visit = func(n *trie.Node) {
		if n == nil || visited[n] {
			return
		}
		visited[n] = true
		order = append(order, n)
		visit(n.FirstChild)
		visit(n.NextSibling)
	}
	visit(root)

	return order
}
