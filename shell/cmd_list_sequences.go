package shell

import (
	"fmt"
)

// list_sequences
type listSequencesCmd struct {
}

func (c *listSequencesCmd) Exec(shell *Shell, args []string) {

	for _, sequence := range shell.registry.Assigned() {
		fmt.Fprintf(shell, "- %v\n", sequence)
	}

	fmt.Fprintf(shell, "Snapshot: %v\n", shell.registry.Snapshot())
}
