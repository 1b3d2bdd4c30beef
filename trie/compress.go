package trie

// Compressor merges structurally identical subtries of an insertion trie
// bottom-up, turning the tree into a DAG of canonical nodes. Two subtries
// are identical iff they share (character, priority-vector contents,
// first-child identity, next-sibling identity) — a hash-consing table keyed
// on exactly those four fields.
//
// A Compressor is single-use per compression pass but safe to re-run: since
// canonicalization is idempotent, calling Compress on an already-compressed
// node returns the same node (by identity) without growing the table.
type Compressor struct {
	table map[nodeKey]*Node
	// seen memoizes node -> canonical result so a node reachable through
	// several parents (as happens once the trie is already a DAG) is only
	// canonicalized once, and so that cyclic re-entry is impossible.
	seen map[*Node]*Node
}

// nodeKey is the hash-consing key. Child and Sibling are compared by
// pointer identity, which is valid because Compress always canonicalizes
// descendants before the current node (post-order).
type nodeKey struct {
	char    rune
	hasPrio bool
	prio    string
	child   *Node
	sibling *Node
}

// NewCompressor creates a Compressor with a fresh canonical table.
func NewCompressor() *Compressor {
	return &Compressor{
		table: make(map[nodeKey]*Node),
		seen:  make(map[*Node]*Node),
	}
}

// Compress canonicalizes the subtrie rooted at n and returns its canonical
// representative. The caller should replace its reference to n with the
// returned node.
func (c *Compressor) Compress(n *Node) *Node {
	if n == nil {
		return nil
	}
	if canon, ok := c.seen[n]; ok {
		return canon
	}

	// Post-order: canonicalize descendants first so their identities are
	// stable by the time we build this node's key.
	n.FirstChild = c.Compress(n.FirstChild)
	n.NextSibling = c.Compress(n.NextSibling)

	key := nodeKey{
		char:    n.Char,
		hasPrio: n.Priorities != nil,
		prio:    string(n.Priorities),
		child:   n.FirstChild,
		sibling: n.NextSibling,
	}

	canon, ok := c.table[key]
	if !ok {
		canon = n
		c.table[key] = canon
	}

	c.seen[n] = canon
	return canon
}

// Count returns the number of distinct canonical nodes produced so far.
func (c *Compressor) Count() int {
	return len(c.table)
}
