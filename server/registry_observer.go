package main

import (
	"log"
	"sync"

	"github.com/d3ce1t/uuidgen-server/uuidgen"

	observer "github.com/imkira/go-observer"
)

// RegistryObserver consumes the sequence-assignment signals the registry
// publishes and turns them into log lines and counters. The stream is
// attached at construction so assignments made before run starts are not
// lost.
type RegistryObserver struct {
	server *Server
	stream observer.Stream
	mutex  sync.Mutex
	seen   int
}

func newRegistryObserver(server *Server) *RegistryObserver {
	return &RegistryObserver{
		server: server,
		stream: server.Registry.Observe(),
	}
}

func (m *RegistryObserver) run() {
	for {
		m.receiveSignals()
	}
}

func (m *RegistryObserver) receiveSignals() {

	defer func() {
		if r := recover(); r != nil {
			log.Printf("* registryObserver receiveSignals err: %v", r)
		}
	}()

	for {
		<-m.stream.Changes()
		m.stream.Next()
		signal := m.stream.Value().(*uuidgen.SequenceSignal)
		m.processSignal(signal)
	}
}

func (m *RegistryObserver) processSignal(signal *uuidgen.SequenceSignal) {

	log.Printf("Clock sequence %v assigned (%v in this process)\n",
		signal.Sequence, signal.NumAssigned)

	m.mutex.Lock()
	m.seen++
	m.mutex.Unlock()
}

func (m *RegistryObserver) NumSignals() int {
	defer m.mutex.Unlock()
	m.mutex.Lock()
	return m.seen
}
