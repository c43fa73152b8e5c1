package uuidgen

import (
	"encoding/binary"
	"net"
	"time"
)

const (
	// 100-ns intervals between the UUID epoch (15 Oct 1582) and the Unix epoch
	epochOffset = 0x01b21dd213814000

	// Version 1 marker, placed in the nibble above the low 32 timestamp bits
	versionType1 = 0x1000

	// 100-ns slots available within one wall-clock millisecond
	slotsPerMillis = 10000
)

// Config carries the optional knobs read once when a generator is built
type Config struct {
	// Sequence seeds the clock sequence with a caller-chosen value.
	// Zero means draw a random one.
	Sequence uint16

	// Node overrides hardware address resolution. Leave nil to derive
	// the node from this machine.
	Node []byte
}

// Generator produces time-based (Type 1) identifiers. The node and clock
// sequence are fixed at construction; only the timestamp varies between
// calls, so NewUUID touches no shared state beyond one atomic increment
// and never blocks.
type Generator struct {
	registry *SequenceRegistry
	sequence uint16
	node     [8]byte
	low      uint64
}

// NewGenerator builds a generator bound to the given per-process
// registry. Construction resolves the node identifier, claims a clock
// sequence and precomputes the immutable low 64 bits of every identifier
// this instance will emit. All fallibility lives here: NewUUID itself
// cannot fail.
func NewGenerator(registry *SequenceRegistry, config Config) (*Generator, error) {

	if registry == nil {
		return nil, ErrNilRegistry
	}

	sequence, err := registry.allocate(config.Sequence)
	if err != nil {
		return nil, err
	}

	nodeSrc := config.Node
	if nodeSrc == nil {
		nodeSrc = resolveNodeBytes()
	}

	node := newNodeBuffer(nodeSrc)

	return &Generator{
		registry: registry,
		sequence: sequence,
		node:     node,
		low:      binary.BigEndian.Uint64(node[:]) | uint64(sequence)<<48,
	}, nil
}

// Sequence returns the clock sequence claimed by this instance
func (g *Generator) Sequence() uint16 {
	return g.sequence
}

// Node returns the 6 node bytes of this instance
func (g *Generator) Node() net.HardwareAddr {
	node := make([]byte, 6)
	copy(node, g.node[2:8])
	return node
}

/*
  Generates a Type 1 UUID. The timestamp counts 100-ns intervals since
  00:00:00.00 UTC, 15 October 1582; its low 10000 slots per millisecond
  are filled from the registry counter, so identifiers stay unique as
  long as fewer than 10000 are requested within one millisecond on the
  same node. Identifiers stay unique to their 100-ns interval for
  roughly 8,925 years.

  Layout of the result:

  - digits 1-12: low 48 bits of the timestamp
  - digit 13: version (1)
  - digits 14-16: high 12 bits of the timestamp
  - digit 17: variant (binary 10) plus top bits of the clock sequence
  - digit 18: low 8 bits of the clock sequence
  - digits 19-32: node
*/
func (g *Generator) NewUUID() UUID {

	millis := time.Now().UnixNano() / int64(time.Millisecond)

	t := uint64(millis)*slotsPerMillis + epochOffset + g.registry.nextCount()%slotsPerMillis

	high := (t&0xffffffff)<<32 |
		(t&0xffff00000000)>>16 |
		versionType1 |
		(t&0xfff000000000000)>>48

	return newUUID(high, g.low)
}

// NowMillis returns the wall-clock reading identifiers are stamped with,
// for collaborators that correlate events with generation time.
func NowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
