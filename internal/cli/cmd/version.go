package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen"
)

// Version is the CLI's own version string, surfaced via `--version` and
// the `version` subcommand.
const Version = lexgen.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("lexgen version %s\n", lexgen.FullVersion())
	fmt.Println("Thompson construction, epsilon-closure simulation, and subset construction over NFA/DFA automata.")
}
