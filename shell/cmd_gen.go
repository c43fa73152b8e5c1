package shell

import (
	"errors"
	"fmt"
	"strconv"
)

type genCmd struct {
}

// gen [num]
func (c *genCmd) Exec(shell *Shell, args []string) {

	num := 1

	if len(args) > 1 {
		value, err := strconv.Atoi(args[1])
		manageShellError(err)
		num = value
	}

	if num < 1 || num > 10000 {
		manageShellError(errors.New("num must be between 1 and 10000"))
	}

	for i := 0; i < num; i++ {
		fmt.Fprintf(shell, "%v\n", shell.generator.NewUUID())
	}
}
