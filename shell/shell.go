package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/d3ce1t/uuidgen-server/api"
	"github.com/d3ce1t/uuidgen-server/uuidgen"

	"golang.org/x/crypto/ssh/terminal"
)

type Command interface {
	Exec(shell *Shell, args []string)
}

type Shell struct {
	generator *uuidgen.Generator
	registry  *uuidgen.SequenceRegistry
	stateDAO  api.GeneratorStateDAO // may be nil when the database is disabled
	term      *terminal.Terminal
	commands  map[string]Command
	welcome   string
	prompt    string
	OnStart   func(*Shell)
}

func NewShell(generator *uuidgen.Generator, registry *uuidgen.SequenceRegistry,
	stateDAO api.GeneratorStateDAO, rw io.ReadWriter) *Shell {

	shell := &Shell{
		generator: generator,
		registry:  registry,
		stateDAO:  stateDAO,
		welcome:   "Welcome to uuidgen server SHELL",
		prompt:    "uuidgen$> ",
	}

	shell.term = terminal.NewTerminal(rw, shell.prompt)
	shell.init()

	return shell
}

func (shell *Shell) init() {
	shell.commands = map[string]Command{
		"help":           &helpCmd{},
		"gen":            &genCmd{},
		"node_info":      &nodeInfoCmd{},
		"list_sequences": &listSequencesCmd{},
		"save_state":     &saveStateCmd{},
	}
}

// Shell implements io.Writer so commands can Fprintf straight into the
// connected terminal
func (shell *Shell) Write(p []byte) (int, error) {
	return shell.term.Write(p)
}

// Run executes the shell until the peer disconnects or types exit
func (shell *Shell) Run() {

	if shell.OnStart != nil {
		shell.OnStart(shell)
	}

	fmt.Fprintf(shell, "\n%s\n\n", shell.welcome)

	exit := false

	for !exit {
		exit = shell.executeShell()
	}

	fmt.Fprint(shell, "Good bye\n")
}

// Shell wrapper to manage errors
func (shell *Shell) executeShell() (exit bool) {

	// Defer recovery
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(shell, "Error: %v\n", r)
			exit = false
		}
	}()

	for { // Execute until peer closes the channel

		line, err := shell.term.ReadLine()
		if err != nil {
			return true
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Split(line, " ")

		if args[0] == "exit" {
			return true
		}

		if command, ok := shell.commands[args[0]]; ok {
			command.Exec(shell, args)
		} else {
			fmt.Fprintf(shell, "Command %s does not exist\n", args[0])
		}
	} // Loop
}

func manageShellError(err error) {
	if err != nil {
		panic(err)
	}
}
