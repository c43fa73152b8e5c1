package uuidgen

import (
	"sync"
	"testing"
)

func TestUUIDGenerator(t *testing.T) {

	registry := NewSequenceRegistry()
	generator, err := NewGenerator(registry, Config{})
	if err != nil {
		t.Fatal(err)
	}

	hash := make(map[UUID]bool)

	for i := 0; i < 9000; i++ {
		newUUID := generator.NewUUID()

		if _, ok := hash[newUUID]; ok {
			t.Fatal("The generated UUID", newUUID, "already exists on iteration", i)
		}

		hash[newUUID] = true
	}
}

func TestUUIDVersionAndVariant(t *testing.T) {

	registry := NewSequenceRegistry()
	generator, err := NewGenerator(registry, Config{})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		u := generator.NewUUID()

		if u.Version() != 1 {
			t.Fatal("Expected version 1 but got", u.Version())
		}

		if u.Variant() != 0x2 {
			t.Fatalf("Expected variant bits 10 but got %02b", u.Variant())
		}
	}
}

// The low 64 bits are fixed at construction, so every identifier of one
// instance shares them and only the high word changes
func TestUUIDLowPartStable(t *testing.T) {

	registry := NewSequenceRegistry()
	generator, err := NewGenerator(registry, Config{})
	if err != nil {
		t.Fatal(err)
	}

	first := generator.NewUUID()

	for i := 0; i < 1000; i++ {
		u := generator.NewUUID()

		for b := 8; b < 16; b++ {
			if u[b] != first[b] {
				t.Fatalf("Low part changed between calls: %v vs %v", first, u)
			}
		}
	}
}

func TestUUIDFixedNodeAndSequence(t *testing.T) {

	registry := NewSequenceRegistry()
	node := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}

	generator, err := NewGenerator(registry, Config{Node: node})
	if err != nil {
		t.Fatal(err)
	}

	u1 := generator.NewUUID()
	u2 := generator.NewUUID()

	if u1 == u2 {
		t.Fatal("Back-to-back calls returned the same UUID", u1)
	}

	for i := 0; i < 6; i++ {
		if u1.Node()[i] != node[i] || u2.Node()[i] != node[i] {
			t.Fatal("Node bytes changed:", u1.Node(), u2.Node())
		}
	}

	if u1.ClockSequence() != generator.Sequence() || u2.ClockSequence() != generator.Sequence() {
		t.Fatal("Clock sequence changed between calls")
	}

	if u1.Version() != 1 || u2.Version() != 1 {
		t.Fatal("Version changed between calls")
	}
}

// With a non-decreasing wall clock the decoded timestamps never go back
func TestUUIDTimeOrder(t *testing.T) {

	registry := NewSequenceRegistry()
	generator, err := NewGenerator(registry, Config{})
	if err != nil {
		t.Fatal(err)
	}

	lastTime := generator.NewUUID().Time()

	for i := 0; i < 1000; i++ {
		u := generator.NewUUID()

		if u.Time() < lastTime {
			t.Fatal("Timestamp went back on iteration", i)
		}

		lastTime = u.Time()
	}
}

func TestUUIDGeneratorConcurrent(t *testing.T) {

	registry := NewSequenceRegistry()
	generator, err := NewGenerator(registry, Config{})
	if err != nil {
		t.Fatal(err)
	}

	const numWorkers = 8
	const perWorker = 1000

	results := make([][]UUID, numWorkers)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			uuids := make([]UUID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				uuids = append(uuids, generator.NewUUID())
			}
			results[workerID] = uuids
		}(w)
	}

	wg.Wait()

	hash := make(map[UUID]bool)

	for _, uuids := range results {
		for _, u := range uuids {
			if _, ok := hash[u]; ok {
				t.Fatal("The generated UUID", u, "already exists")
			}
			hash[u] = true
		}
	}
}

func TestNewGeneratorNilRegistry(t *testing.T) {

	if _, err := NewGenerator(nil, Config{}); err != ErrNilRegistry {
		t.Fatal("Expected ErrNilRegistry but got", err)
	}
}
