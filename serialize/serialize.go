// Package serialize encodes and decodes a packed automaton.Automaton as a
// gzip-framed binary blob, so a Loader can ship compiled pattern sets as
// embedded assets instead of recompiling raw pattern text on every process
// start.
package serialize

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/coreliang/hyphen/automaton"
	"github.com/coreliang/hyphen/internal/conv"
)

const (
	// magic identifies the inner payload as a packed hyphenation automaton:
	// ASCII "LHYP", after Liang's hyphenation algorithm.
	magic   uint32 = 0x4C485950
	version uint32 = 1
)

type header struct {
	Magic       uint32
	Version     uint32
	States      uint32
	DataLen     uint32
	BasesLen    uint32
	CharMapLen  uint32
	AlphabetLen uint32
}

type charMapEntryWire struct {
	Char  uint16
	Index int32
}

// Encode writes a's gzip-compressed binary encoding to w.
func Encode(w io.Writer, a *automaton.Automaton) error {
	gz := gzip.NewWriter(w)
	if err := encodePayload(gz, a); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

func encodePayload(w io.Writer, a *automaton.Automaton) error {
	buf := bufio.NewWriter(w)

	entries := a.CharMap.Entries()
	hdr := header{
		Magic:       magic,
		Version:     version,
		States:      conv.IntToUint32(a.States()),
		DataLen:     conv.IntToUint32(len(a.Data)),
		BasesLen:    conv.IntToUint32(len(a.Bases)),
		CharMapLen:  conv.IntToUint32(len(entries)),
		AlphabetLen: conv.IntToUint32(a.AlphabetLen),
	}
	if err := binary.Write(buf, binary.BigEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, a.Data); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, a.Bases); err != nil {
		return err
	}

	wireEntries := make([]charMapEntryWire, len(entries))
	for i, e := range entries {
		wireEntries[i] = charMapEntryWire{Char: conv.RuneToUint16(e.Char), Index: e.Index}
	}
	if err := binary.Write(buf, binary.BigEndian, wireEntries); err != nil {
		return err
	}

	if err := writePriorities(buf, a.Priorities, int(hdr.States)); err != nil {
		return err
	}

	return buf.Flush()
}

func writePriorities(buf *bufio.Writer, priorities [][]byte, states int) error {
	for i := 0; i < states; i++ {
		var v []byte
		if i < len(priorities) {
			v = priorities[i]
		}
		if len(v) > 0xFF {
			panic("priority vector exceeds file format")
		}
		if err := buf.WriteByte(byte(len(v))); err != nil {
			return err
		}
		if len(v) > 0 {
			if _, err := buf.Write(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Decode reads a's gzip-compressed binary encoding from r.
//
// It returns a *BadMagicError if the decompressed payload does not start
// with the expected magic number, and a *BadVersionError if the payload's
// version differs from the one this package writes.
func Decode(r io.Reader) (*automaton.Automaton, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("serialize: opening gzip stream: %w", err)
	}
	defer gz.Close()
	return decodePayload(gz)
}

func decodePayload(r io.Reader) (*automaton.Automaton, error) {
	buf := bufio.NewReader(r)

	var hdr header
	if err := binary.Read(buf, binary.BigEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Magic != magic {
		return nil, &BadMagicError{Got: hdr.Magic}
	}
	if hdr.Version != version {
		return nil, &BadVersionError{Got: hdr.Version}
	}

	data := make([]automaton.Transition, hdr.DataLen)
	if err := binary.Read(buf, binary.BigEndian, data); err != nil {
		return nil, err
	}

	bases := make([]int32, hdr.BasesLen)
	if err := binary.Read(buf, binary.BigEndian, bases); err != nil {
		return nil, err
	}

	wireEntries := make([]charMapEntryWire, hdr.CharMapLen)
	if err := binary.Read(buf, binary.BigEndian, wireEntries); err != nil {
		return nil, err
	}
	entries := make([]automaton.CharMapEntry, len(wireEntries))
	for i, e := range wireEntries {
		entries[i] = automaton.CharMapEntry{Char: rune(e.Char), Index: e.Index}
	}

	priorities, err := readPriorities(buf, int(hdr.States))
	if err != nil {
		return nil, err
	}

	return &automaton.Automaton{
		Data:        data,
		Bases:       bases,
		CharMap:     automaton.NewCharMapFromEntries(entries),
		AlphabetLen: int(hdr.AlphabetLen),
		Priorities:  priorities,
	}, nil
}

func readPriorities(buf *bufio.Reader, states int) ([][]byte, error) {
	priorities := make([][]byte, states)
	for i := 0; i < states; i++ {
		n, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		v := make([]byte, n)
		if _, err := io.ReadFull(buf, v); err != nil {
			return nil, err
		}
		priorities[i] = v
	}
	return priorities, nil
}
