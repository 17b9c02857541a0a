// palettecraft - colour palette generation, accessibility checks and sharing
// from the command line.
package main

import (
	"os"

	"github.com/jmylchreest/palettecraft/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
