package bigint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of x, consistent with Equal: values that
// compare equal hash equal, because hashing always sees the canonical
// (normalized) representation. The hash is stable within a process and
// across processes for the same build of xxhash.
func (x Int) Hash() uint64 {
	buf := make([]byte, 1+4*len(x.mag))
	buf[0] = byte(x.sign)
	for i, limb := range x.mag {
		binary.LittleEndian.PutUint32(buf[1+4*i:], limb)
	}
	return xxhash.Sum64(buf)
}
