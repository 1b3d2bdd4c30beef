package hyphen

import "github.com/coreliang/hyphen/automaton"

// scan runs Liang's algorithm: for every starting offset of the
// boundary-extended word it walks the automaton, merging each visited
// state's priority vector into the output by per-position maximum.
//
// Returns a slice of length max(0, len(runes)-1); words shorter than two
// characters yield nil.
func scan(a *automaton.Automaton, word string, fold func(rune) rune) []byte {
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

	priorities := make([]byte, len(runes)-1)

	for s := 0; s < len(extended); s++ {
		state := automaton.RootState
		for p := s; p < len(extended); p++ {
			next, ok := a.TryTransition(state, extended[p])
			if !ok {
				break
			}
			state = next

			if v := a.PriorityVector(state); v != nil {
				for i, val := range v {
					j := s + i - 2
					if j < 0 || j >= len(priorities) {
						continue
					}
					if val > priorities[j] {
						priorities[j] = val
					}
				}
			}
		}
	}

	return priorities
}
