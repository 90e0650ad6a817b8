package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen"
	"github.com/lexgen-dev/lexgen/internal/cli/output"
)

var buildDeterminize bool

var buildCmd = &cobra.Command{
	Use:   "build <pattern>",
	Short: "Translate a regex pattern and build its NFA",
	Long: `Build translates pattern via regexp/syntax, lowers the AST to a
Spec tree, and runs Thompson construction to produce an NFA. With
--determinize, it additionally runs subset construction and reports the
resulting DFA's state count.`,
	Example: `  lexgen build "ab|cd"
  lexgen build "a{2,5}" --determinize`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildDeterminize, "determinize", "d", false, "Also run subset construction and report DFA state count")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	nfa, err := lexgen.TranslateAndBuild(pattern)
	if err != nil {
		formatter.PrintError("failed to build NFA: %v", err)
		exitWithError("failed to build NFA for %q", pattern)
		return
	}

	result := &output.BuildResult{
		Pattern:     pattern,
		NFAStates:   nfa.Arena.Len(),
		Determinize: buildDeterminize,
	}
	if buildDeterminize {
		dfa := lexgen.ToDFA(nfa)
		result.DFAStates = dfa.Arena.Len()
	}

	if err := formatter.FormatBuildResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
	}
}
