package automaton

import "fmt"

// StateOverflowError is returned when the packer would need more states
// than the chosen transition entry width can address. The caller must
// widen the entry format or reduce the pattern set.
type StateOverflowError struct {
	StateCount int
	Limit      int
}

func (e *StateOverflowError) Error() string {
	return fmt.Sprintf("automaton: %d states exceeds the %d-state limit of a 32-bit transition entry", e.StateCount, e.Limit)
}
