package main

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/d3ce1t/uuidgen-server/api"
	"github.com/d3ce1t/uuidgen-server/cqldao"
	"github.com/d3ce1t/uuidgen-server/uuidgen"
)

func NewServer(config *Config, registry *uuidgen.SequenceRegistry) *Server {
	return &Server{
		Config:   config,
		Registry: registry,
		sessions: make(map[string]*Session),
	}
}

type Server struct {
	Config    *Config
	Registry  *uuidgen.SequenceRegistry
	Generator *uuidgen.Generator
	DbSession *cqldao.GocqlSession
	StateDAO  api.GeneratorStateDAO
	sessions  map[string]*Session
	mutex     sync.RWMutex
}

// Run accepts client connections until the listener fails
func (server *Server) Run() {

	addr := fmt.Sprintf("%v:%v", server.Config.ListenAddress(), server.Config.ListenPort())

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		panic("failed to listen for connection")
	}

	defer listener.Close()

	log.Println("Server listening on", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Server: failed to accept incoming connection (%v)\n", err)
			continue
		}

		session := NewSession(conn, server)
		server.registerSession(session)
		go session.RunLoop()
	}
}

func (server *Server) registerSession(session *Session) {
	defer server.mutex.Unlock()
	server.mutex.Lock()
	server.sessions[session.Token] = session
}

func (server *Server) unregisterSession(session *Session) {
	defer server.mutex.Unlock()
	server.mutex.Lock()
	delete(server.sessions, session.Token)
}

func (server *Server) NumSessions() int {
	defer server.mutex.RUnlock()
	server.mutex.RLock()
	return len(server.sessions)
}
