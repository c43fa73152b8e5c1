package main

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/d3ce1t/uuidgen-server/uuidgen"

	"github.com/twinj/uuid"
)

const (
	MAX_IDLE_TIME = 5 * time.Minute
)

// Creates a new session with an already connected client
func NewSession(conn net.Conn, server *Server) *Session {
	return &Session{
		Conn:   conn,
		Token:  uuid.NewV4().String(),
		Server: server,
	}
}

type Session struct {
	Conn   net.Conn
	Token  string
	Server *Server
}

func (s *Session) String() string {
	return s.Token[:8] + "@" + s.Conn.RemoteAddr().String()
}

/*
  Serves one client. The protocol is line based:

    GEN <n>   write n identifiers, one per line, then "OK <n>"
    TIME      write the current wall-clock reading in unix millis
    QUIT      write "BYE" and close

  Anything else gets an "ERR <reason>" line and the session goes on.
*/
func (s *Session) RunLoop() {

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Session %v Panic: %v\n", s, r)
		}
		s.Conn.Close()
		s.Server.unregisterSession(s)
		log.Printf("Session %v closed\n", s)
	}()

	log.Printf("Session %v open\n", s)

	scanner := bufio.NewScanner(s.Conn)
	writer := bufio.NewWriter(s.Conn)

	for {
		s.Conn.SetReadDeadline(time.Now().Add(MAX_IDLE_TIME))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				log.Printf("Session %v read error: %v\n", s, err)
			}
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit := s.processCommand(writer, line)

		if err := writer.Flush(); err != nil {
			log.Printf("Session %v write error: %v\n", s, err)
			return
		}

		if quit {
			return
		}
	}
}

func (s *Session) processCommand(w *bufio.Writer, line string) (quit bool) {

	args := strings.Fields(line)

	switch strings.ToUpper(args[0]) {

	case "GEN":

		num := 1

		if len(args) > 1 {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(w, "ERR %v\n", ErrMalformedCommand)
				return false
			}
			num = value
		}

		if num < 1 || num > s.Server.Config.MaxBatchSize() {
			fmt.Fprintf(w, "ERR %v\n", ErrBatchTooBig)
			return false
		}

		for i := 0; i < num; i++ {
			fmt.Fprintf(w, "%v\n", s.Server.Generator.NewUUID())
		}

		fmt.Fprintf(w, "OK %v\n", num)

	case "TIME":
		fmt.Fprintf(w, "%v\n", uuidgen.NowMillis())

	case "QUIT":
		fmt.Fprint(w, "BYE\n")
		return true

	default:
		fmt.Fprintf(w, "ERR %v\n", ErrUnknownCommand)
	}

	return false
}
