package uuidgen

import (
	"encoding/binary"
	"fmt"
)

// UUID is a 128-bit time-based (Type 1) identifier stored big-endian:
// bytes 0-7 hold the high word (timestamp and version), bytes 8-15 the
// low word (variant, clock sequence and node).
type UUID [16]byte

func newUUID(high uint64, low uint64) UUID {
	var u UUID
	binary.BigEndian.PutUint64(u[0:8], high)
	binary.BigEndian.PutUint64(u[8:16], low)
	return u
}

// Bytes returns a copy of the raw 16 bytes
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// Version returns the version number encoded in the identifier. Always 1
// for identifiers produced by this package.
func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// Variant returns the two variant bits. Always binary 10 for identifiers
// produced by this package.
func (u UUID) Variant() byte {
	return u[8] >> 6
}

// Time returns the number of 100-nanosecond intervals since the UUID
// epoch (00:00:00.00 UTC, 15 October 1582) encoded in the identifier.
func (u UUID) Time() int64 {
	high := binary.BigEndian.Uint64(u[0:8])
	t := (high >> 32) & 0xffffffff
	t |= (high & 0xffff0000) << 16
	t |= (high & 0xfff) << 48
	return int64(t)
}

// ClockSequence returns the 14-bit clock sequence of the generator that
// produced this identifier.
func (u UUID) ClockSequence() uint16 {
	return uint16(u[8]&0x3f)<<8 | uint16(u[9])
}

// Node returns a copy of the 6 node bytes
func (u UUID) Node() []byte {
	b := make([]byte, 6)
	copy(b, u[10:16])
	return b
}

// String returns the identifier in its canonical textual form, e.g.
// 6f807710-98b2-11ea-8081-b4d5bde50dd3
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
