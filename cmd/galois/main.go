// Command galois computes concept lattices and mines association rules
// from context tables.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/galois/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
