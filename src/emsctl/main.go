// emsctl is the command-line client for the EMS platform.
package main

import (
	"github.com/bitswalk/ems/src/emsctl/internal/cmd"
)

func main() {
	cmd.Execute()
}
