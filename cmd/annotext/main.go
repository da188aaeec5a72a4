// Command annotext is a small terminal text editor with search and syntax
// highlighting, plus non-interactive cat and search subcommands.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
