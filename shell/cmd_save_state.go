package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/d3ce1t/uuidgen-server/api"
	"github.com/d3ce1t/uuidgen-server/utils"
)

type saveStateCmd struct {
}

// save_state
func (c *saveStateCmd) Exec(shell *Shell, args []string) {

	if shell.stateDAO == nil {
		manageShellError(errors.New("database isn't enabled"))
	}

	host, err := os.Hostname()
	manageShellError(err)

	err = shell.stateDAO.Insert(&api.GeneratorStateDTO{
		Host:      host,
		Node:      shell.generator.Node(),
		Sequence:  int(shell.generator.Sequence()),
		SavedDate: utils.GetCurrentTimeMillis(),
	})
	manageShellError(err)

	fmt.Fprint(shell, "State saved\n")
}
