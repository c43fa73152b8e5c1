package shell

import (
	"fmt"
)

type nodeInfoCmd struct {
}

// node_info
func (c *nodeInfoCmd) Exec(shell *Shell, args []string) {
	fmt.Fprintf(shell, "Node: %v\n", shell.generator.Node())
	fmt.Fprintf(shell, "Clock sequence: %v\n", shell.generator.Sequence())
	fmt.Fprintf(shell, "Sequences assigned in this process: %v\n", shell.registry.NumAssigned())
}
