package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/fzft/go-intset/set"
)

// Binary layout of an IntSet: a big-endian uint32 element count followed by
// the elements themselves, each a big-endian uint32, ascending, no padding.
// This is the interchange shape for stored values and must not change.

const wordSize = 4

// MarshalBinary serializes v into its fixed-width binary layout.
func MarshalBinary(v *set.IntSet) []byte {
	return AppendBinary(nil, v)
}

// AppendBinary appends v's binary layout to buf and returns the result.
func AppendBinary(buf []byte, v *set.IntSet) []byte {
	n := v.Cardinality()
	buf = binary.BigEndian.AppendUint32(buf, n)
	for i := 0; i < int(n); i++ {
		buf = binary.BigEndian.AppendUint32(buf, v.At(i))
	}
	return buf
}

// UnmarshalBinary decodes a buffer produced by MarshalBinary. Unlike the
// text side, the input here is a persistence artifact, so structural
// damage (truncation, trailing bytes, out-of-order elements) is rejected
// rather than normalized.
func UnmarshalBinary(data []byte) (*set.IntSet, error) {
	if len(data) < wordSize {
		return nil, fmt.Errorf("intset binary: buffer too short: %d bytes", len(data))
	}
	n := binary.BigEndian.Uint32(data)
	want := wordSize + int(n)*wordSize
	if len(data) != want {
		return nil, fmt.Errorf("intset binary: count %d wants %d bytes, have %d", n, want, len(data))
	}
	elems := make([]uint32, n)
	for i := range elems {
		elems[i] = binary.BigEndian.Uint32(data[wordSize+i*wordSize:])
		if i > 0 && elems[i] <= elems[i-1] {
			return nil, fmt.Errorf("intset binary: elements not strictly ascending at index %d", i)
		}
	}
	return set.FromSorted(elems), nil
}
