package uuidgen

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	observer "github.com/imkira/go-observer"
)

const (
	SequenceMask = 0x3FFF // clock sequences are 14-bit values
	MaxSequences = SequenceMask + 1
)

// SequenceSignal is published on the registry stream every time a clock
// sequence is assigned to a new generator
type SequenceSignal struct {
	Sequence    uint16
	NumAssigned int
}

// SequenceRegistry keeps track of every clock sequence assigned within
// this process so that no two generators ever share one. It also owns the
// process-wide counter used to tell apart identifiers generated within
// the same millisecond. One registry exists per process and is handed to
// every generator explicitly.
type SequenceRegistry struct {
	counter  uint64 // incremented atomically, keep first for alignment
	mutex    sync.Mutex
	assigned []uint16
	signal   observer.Property
}

func NewSequenceRegistry() *SequenceRegistry {
	return &SequenceRegistry{
		signal: observer.NewProperty(nil),
	}
}

// NewSequenceRegistryFromString rebuilds a registry from the textual form
// produced by Snapshot. A malformed string is a configuration error and
// fails the caller instead of silently dropping reserved sequences.
func NewSequenceRegistryFromString(s string) (*SequenceRegistry, error) {

	registry := NewSequenceRegistry()

	if s == "" {
		return registry, nil
	}

	for _, token := range strings.Split(s, ",") {
		value, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, err
		}
		registry.assigned = append(registry.assigned, uint16(value)&SequenceMask)
	}

	return registry, nil
}

// Snapshot returns the assigned sequences as comma-separated integers, in
// assignment order
func (r *SequenceRegistry) Snapshot() string {

	defer r.mutex.Unlock()
	r.mutex.Lock()

	parts := make([]string, 0, len(r.assigned))
	for _, sequence := range r.assigned {
		parts = append(parts, strconv.Itoa(int(sequence)))
	}

	return strings.Join(parts, ",")
}

// Assigned returns a copy of the sequences assigned so far
func (r *SequenceRegistry) Assigned() []uint16 {
	defer r.mutex.Unlock()
	r.mutex.Lock()
	assigned := make([]uint16, len(r.assigned))
	copy(assigned, r.assigned)
	return assigned
}

func (r *SequenceRegistry) NumAssigned() int {
	defer r.mutex.Unlock()
	r.mutex.Lock()
	return len(r.assigned)
}

// Observe returns a stream that receives a *SequenceSignal for each
// assignment made after the call
func (r *SequenceRegistry) Observe() observer.Stream {
	return r.signal.Observe()
}

/*
  Claims a clock sequence nobody else in this process holds. The seed is
  used as first candidate when it is nonzero, otherwise a random one is
  drawn. Candidates already taken are probed past by incrementing modulo
  16384. Once every slot is taken ErrSequenceExhausted is returned; the
  registry never releases sequences, so that state lasts until the
  process exits.
*/
func (r *SequenceRegistry) allocate(seed uint16) (uint16, error) {

	defer r.mutex.Unlock()
	r.mutex.Lock()

	candidate := seed & SequenceMask

	if candidate == 0 {
		random, err := randUint64()
		if err != nil {
			return 0, err
		}
		candidate = uint16(random) & SequenceMask
	}

	for i := 0; i < MaxSequences; i++ {

		if !r.containsLocked(candidate) {
			r.assigned = append(r.assigned, candidate)
			r.signal.Update(&SequenceSignal{
				Sequence:    candidate,
				NumAssigned: len(r.assigned),
			})
			return candidate, nil
		}

		candidate = (candidate + 1) & SequenceMask
	}

	return 0, ErrSequenceExhausted
}

// nextCount advances the shared sub-millisecond counter. Safe for use
// from any goroutine without further locking.
func (r *SequenceRegistry) nextCount() uint64 {
	return atomic.AddUint64(&r.counter, 1)
}

func (r *SequenceRegistry) containsLocked(sequence uint16) bool {
	for _, assigned := range r.assigned {
		if assigned == sequence {
			return true
		}
	}
	return false
}

func randUint64() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
