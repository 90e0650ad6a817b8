// Command lexgen is a development CLI over the lexgen core: build, simulate,
// determinize, and dump NFA/DFA automata compiled from regular expressions.
package main

import (
	"os"

	"github.com/lexgen-dev/lexgen/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
