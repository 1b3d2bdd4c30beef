package serialize

import "fmt"

// BadMagicError reports a header whose magic number does not identify a
// packed hyphenation automaton.
type BadMagicError struct {
	Got uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("serialize: bad magic %#08x, want %#08x", e.Got, magic)
}

// BadVersionError reports a header whose version this package cannot read.
type BadVersionError struct {
	Got uint32
}

func (e *BadVersionError) Error() string {
	return fmt.Sprintf("serialize: unsupported format version %d, want %d", e.Got, version)
}
