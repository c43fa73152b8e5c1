package uuidgen

import (
	"strings"
	"testing"
)

func TestSequencesAreDistinct(t *testing.T) {

	registry := NewSequenceRegistry()
	hash := make(map[uint16]bool)

	for i := 0; i < 500; i++ {

		generator, err := NewGenerator(registry, Config{Node: []byte{1, 2, 3, 4, 5, 6}})
		if err != nil {
			t.Fatal(err)
		}

		sequence := generator.Sequence()

		if sequence > SequenceMask {
			t.Fatal("Sequence", sequence, "is out of range")
		}

		if _, ok := hash[sequence]; ok {
			t.Fatal("Sequence", sequence, "was assigned twice on iteration", i)
		}

		hash[sequence] = true
	}

	if registry.NumAssigned() != 500 {
		t.Fatal("Expected 500 assigned sequences but got", registry.NumAssigned())
	}
}

func TestSeedCollisionIsProbedPast(t *testing.T) {

	registry := NewSequenceRegistry()

	first, err := registry.allocate(77)
	if err != nil {
		t.Fatal(err)
	}

	if first != 77 {
		t.Fatal("Expected seed 77 to be assigned but got", first)
	}

	second, err := registry.allocate(77)
	if err != nil {
		t.Fatal(err)
	}

	if second != 78 {
		t.Fatal("Expected collision to yield 78 but got", second)
	}
}

func TestSeedWrapsAround(t *testing.T) {

	registry := NewSequenceRegistry()

	if _, err := registry.allocate(SequenceMask); err != nil {
		t.Fatal(err)
	}

	sequence, err := registry.allocate(SequenceMask)
	if err != nil {
		t.Fatal(err)
	}

	// 16383 is taken, so the next candidate wraps to 0
	if sequence != 0 {
		t.Fatal("Expected wrap-around to 0 but got", sequence)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {

	registry := NewSequenceRegistry()

	for _, seed := range []uint16{5, 100, 16000} {
		if _, err := registry.allocate(seed); err != nil {
			t.Fatal(err)
		}
	}

	snapshot := registry.Snapshot()

	if snapshot != "5,100,16000" {
		t.Fatal("Unexpected snapshot:", snapshot)
	}

	restored, err := NewSequenceRegistryFromString(snapshot)
	if err != nil {
		t.Fatal(err)
	}

	// Every sequence reserved in the snapshot must stay off-limits
	sequence, err := restored.allocate(5)
	if err != nil {
		t.Fatal(err)
	}

	if sequence != 6 {
		t.Fatal("Expected reserved seed 5 to yield 6 but got", sequence)
	}
}

func TestMalformedRegistryString(t *testing.T) {

	if _, err := NewSequenceRegistryFromString("12,foo,44"); err == nil {
		t.Fatal("Expected an error for a malformed registry string")
	}
}

func TestSequenceExhaustion(t *testing.T) {

	if testing.Short() {
		t.Skip("skipping exhaustion test in short mode")
	}

	registry := NewSequenceRegistry()

	for i := 0; i < MaxSequences; i++ {
		if _, err := registry.allocate(uint16(i % MaxSequences)); err != nil {
			t.Fatal("Allocation failed on iteration", i, "with", err)
		}
	}

	if _, err := registry.allocate(0); err != ErrSequenceExhausted {
		t.Fatal("Expected ErrSequenceExhausted but got", err)
	}
}

func TestRegistryObserve(t *testing.T) {

	registry := NewSequenceRegistry()
	stream := registry.Observe()

	if _, err := registry.allocate(42); err != nil {
		t.Fatal(err)
	}

	signal := stream.Next().(*SequenceSignal)

	if signal.Sequence != 42 || signal.NumAssigned != 1 {
		t.Fatalf("Unexpected signal: %+v", signal)
	}
}

func TestSnapshotIsCommaSeparated(t *testing.T) {

	registry := NewSequenceRegistry()

	for i := 0; i < 5; i++ {
		if _, err := registry.allocate(uint16(i + 1)); err != nil {
			t.Fatal(err)
		}
	}

	if parts := strings.Split(registry.Snapshot(), ","); len(parts) != 5 {
		t.Fatal("Expected 5 entries but got", registry.Snapshot())
	}
}
