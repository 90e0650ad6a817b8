package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen"
	"github.com/lexgen-dev/lexgen/internal/cli/output"
)

var simulateDeterminize bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <pattern> <word>",
	Short: "Build an automaton for pattern and test it against word",
	Long: `Simulate builds an NFA from pattern and runs epsilon-closure
simulation against word. With --determinize, the word is instead run
against the subset-constructed DFA.`,
	Example: `  lexgen simulate "ab|cd" "cd"
  lexgen simulate "a{4,}" "aaaa" --determinize`,
	Args: cobra.ExactArgs(2),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVarP(&simulateDeterminize, "determinize", "d", false, "Simulate against the determinized DFA instead of the NFA")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) {
	pattern, word := args[0], args[1]
	formatter := output.NewFormatter(outputFormat, noColor)

	nfa, err := lexgen.TranslateAndBuild(pattern)
	if err != nil {
		formatter.PrintError("failed to build NFA: %v", err)
		exitWithError("failed to build NFA for %q", pattern)
		return
	}

	var sim lexgen.SimResult
	if simulateDeterminize {
		sim = lexgen.SimulateDFA(lexgen.ToDFA(nfa), word)
	} else {
		sim = lexgen.Simulate(nfa, word)
	}

	result := &output.SimulateResult{
		Pattern:  pattern,
		Word:     word,
		Accepted: sim.Accepted,
		Tagged:   sim.Accepted && sim.Tag != lexgen.NoTag,
		RuleTag:  int(sim.Tag),
	}
	if err := formatter.FormatSimulateResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
	}
}
