// Package trie builds the mutable insertion trie that Liang patterns are
// inserted into, and compresses it into a canonical DAG of shared subtries.
package trie

import "github.com/coreliang/hyphen/pattern"

// Node is a binary-encoded trie node: a character label, an optional
// priority vector (present iff one or more patterns terminate here), a
// first-child link, and a next-sibling link. A node's children are reached
// by following FirstChild and then walking NextSibling.
//
// Before compression a Node tree is uniquely owned (one parent per node).
// After a Compressor runs, Nodes may be shared by multiple parents —
// callers must treat the tree as read-only from that point on.
type Node struct {
	Char        rune
	Priorities  []byte
	FirstChild  *Node
	NextSibling *Node
}

// NewRoot returns an empty root node ready to receive insertions. The
// root's own Char is never consulted at query time; it only participates in
// alphabet collection and compression as any other node does.
func NewRoot() *Node {
	return &Node{}
}

// Insert adds a parsed pattern's characters to the trie rooted at root,
// merging the pattern's priority vector into the terminal node's vector by
// element-wise maximum. Empty patterns are no-ops.
func Insert(root *Node, p pattern.Pattern) {
	if len(p.Chars) == 0 {
		return
	}

	node := root
	for _, c := range p.Chars {
		node = childOrCreate(node, c)
	}
	mergePriorities(node, p.Priorities)
}

// childOrCreate returns the child of node labelled c, creating it (and
// appending it to the sibling chain) if it does not already exist.
func childOrCreate(node *Node, c rune) *Node {
	var prev *Node
	child := node.FirstChild
	for child != nil {
		if child.Char == c {
			return child
		}
		prev = child
		child = child.NextSibling
	}

	created := &Node{Char: c}
	if prev == nil {
		node.FirstChild = created
	} else {
		prev.NextSibling = created
	}
	return created
}

// mergePriorities folds prio into node's stored priority vector by
// element-wise maximum, allocating the vector on first assignment and
// leaving any trailing positions beyond len(prio) unchanged.
func mergePriorities(node *Node, prio []byte) {
	if node.Priorities == nil {
		node.Priorities = append([]byte(nil), prio...)
		return
	}

	if len(prio) > len(node.Priorities) {
		grown := make([]byte, len(prio))
		copy(grown, node.Priorities)
		node.Priorities = grown
	}

	for i, v := range prio {
		if v > node.Priorities[i] {
			node.Priorities[i] = v
		}
	}
}
