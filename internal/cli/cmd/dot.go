package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen"
	"github.com/lexgen-dev/lexgen/internal/cli/output"
)

var (
	dotDeterminize bool
	dotOutFile     string
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Dump the NFA (or DFA, with --determinize) built from pattern as Graphviz",
	Long: `Dot builds an automaton from pattern and writes a Graphviz digraph
description of it: rankdir=LR, doublecircle accepting states, and an
invisible source node pointing at the start state. This is a debugging
aid (spec.md §6's diagnostic dump), not part of the lexer generator's
output contract.

When --out is not given, the dump is written to a file in the configured
dot_out_dir named with a random UUID, so repeated invocations for the same
pattern never collide.`,
	Example: `  lexgen dot "a*b+" --out nfa.dot
  lexgen dot "a{2,5}" --determinize`,
	Args: cobra.ExactArgs(1),
	Run:  runDot,
}

func init() {
	dotCmd.Flags().BoolVarP(&dotDeterminize, "determinize", "d", false, "Dump the subset-constructed DFA instead of the NFA")
	dotCmd.Flags().StringVar(&dotOutFile, "out", "", "Output file path (default: a UUID-named file under the configured dot_out_dir)")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	nfa, err := lexgen.TranslateAndBuild(pattern)
	if err != nil {
		formatter.PrintError("failed to build NFA: %v", err)
		exitWithError("failed to build NFA for %q", pattern)
		return
	}

	path := dotOutFile
	if path == "" {
		dir := "."
		if cfg != nil && cfg.DotOutDir != "" {
			dir = cfg.DotOutDir
		}
		path = filepath.Join(dir, uuid.NewString()+".dot")
	}

	f, err := os.Create(path)
	if err != nil {
		formatter.PrintError("failed to create %s: %v", path, err)
		exitWithError("failed to create dump file %s", path)
		return
	}
	defer f.Close()

	if dotDeterminize {
		err = lexgen.DumpDFA(f, lexgen.ToDFA(nfa))
	} else {
		err = lexgen.Dump(f, nfa)
	}
	if err != nil {
		formatter.PrintError("failed to write dump: %v", err)
		exitWithError("failed to write dump to %s", path)
		return
	}

	formatter.PrintInfo("wrote %s", path)
}
