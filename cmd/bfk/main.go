package main

import (
	"os"

	"github.com/funvibe/bfk/pkg/cli"
)

func main() {
	// No recover here: tape cursor overflow and input failure are defined
	// as process-terminating faults, not handled errors.
	os.Exit(cli.Run(os.Args[1:]))
}
