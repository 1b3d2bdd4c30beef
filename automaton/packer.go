package automaton

import (
	"sort"

	"github.com/coreliang/hyphen/internal/conv"
	"github.com/coreliang/hyphen/internal/sparse"
	"github.com/coreliang/hyphen/trie"
)

// transitionSpec is one (character, destination state) pair read off a
// node's first-child chain before it is placed into the packed data array.
type transitionSpec struct {
	char rune
	dest int32
}

// Pack places every canonical node's transitions into a flat Data array
// via first-fit base assignment, so that a transition lookup at query time
// is one indexed read plus a character check.
//
// State 0 is always root. Pack fails with a *StateOverflowError if the
// trie has more states than a 32-bit transition entry (16-bit state field)
// can address.
func Pack(root *trie.Node) (*Automaton, error) {
	nodes := enumerate(root)
	if len(nodes) > MaxStateID+1 {
		return nil, &StateOverflowError{StateCount: len(nodes), Limit: MaxStateID + 1}
	}

	charMap, alphabetLen := CollectAlphabet(root)

	index := make(map[*trie.Node]int32, len(nodes))
	for i, n := range nodes {
		index[n] = int32(i)
	}

	transitions := make([][]transitionSpec, len(nodes))
	for i, n := range nodes {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			transitions[i] = append(transitions[i], transitionSpec{char: child.Char, dest: index[child]})
		}
	}

	// Packing order: most transitions first, so the hardest states to place
	// land while the data array is still sparse. Stable so equal-count
	// states keep their enumeration order, which keeps packing
	// deterministic run to run.
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(transitions[order[a]]) > len(transitions[order[b]])
	})

	bases := make([]int32, len(nodes))
	priorities := make([][]byte, len(nodes))
	for i, n := range nodes {
		priorities[i] = n.Priorities
	}

	var data []Transition
	occupied := sparse.NewSparseSet(256)
	usedBases := sparse.NewSparseSet(256)
	searchStart := 0
	maxOccupied := -1

	growData := func(need int) {
		if need < len(data) {
			return
		}
		newLen := len(data)
		if newLen == 0 {
			newLen = 64
		}
		for newLen <= need {
			newLen *= 2
		}
		grown := make([]Transition, newLen)
		copy(grown, data)
		data = grown
	}

	for _, si := range order {
		specs := transitions[si]

		if len(specs) == 0 {
			b := 0
			for usedBases.Contains(uint32(b)) {
				b++
			}
			bases[si] = int32(b)
			usedBases.Insert(uint32(b))
			continue
		}

		indices := make([]int32, len(specs))
		for i, sp := range specs {
			indices[i] = charMap.Get(sp.char)
		}

		b := searchStart
		for {
			if !usedBases.Contains(uint32(b)) && fits(b, indices, occupied) {
				break
			}
			b++
		}

		bases[si] = int32(b)
		usedBases.Insert(uint32(b))

		for i, sp := range specs {
			slot := b + int(indices[i])
			growData(slot)
			data[slot] = newTransition(conv.RuneToUint16(sp.char), uint32(sp.dest))
			occupied.Insert(uint32(slot))
			if slot > maxOccupied {
				maxOccupied = slot
			}
		}

		for usedBases.Contains(uint32(searchStart)) {
			searchStart++
		}
	}

	trimmed := maxOccupied + 1
	if trimmed < 0 {
		trimmed = 0
	}
	data = data[:trimmed]

	return &Automaton{
		Data:        data,
		Bases:       bases,
		CharMap:     charMap,
		AlphabetLen: alphabetLen,
		Priorities:  priorities,
	}, nil
}

// fits reports whether base b can host every transition in indices without
// colliding with an already-occupied slot.
func fits(b int, indices []int32, occupied *sparse.SparseSet) bool {
	for _, idx := range indices {
		if occupied.Contains(uint32(b + int(idx))) {
			return false
		}
	}
	return true
}
