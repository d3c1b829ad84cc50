// emsd is the employee management API server.
// It exposes the REST API consumed by emsctl and the web dashboard.
package main

import (
	"github.com/bitswalk/ems/src/emsd/core"
)

func main() {
	core.Execute()
}
