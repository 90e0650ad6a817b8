package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen"
	"github.com/lexgen-dev/lexgen/internal/cli/output"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively build a pattern and test words against it",
	Long: `Repl starts an interactive session: set a regex pattern with
":pattern <regex>", then enter words one per line to simulate against the
NFA built from it. Enter ":pattern <regex>" again to replace the pattern.
Exit with ":quit" or EOF.

Uses GNU-readline-style line editing and history, adapted from
dekarrin-tunaq's InteractiveCommandReader.`,
	Run: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	formatter := output.NewFormatter(outputFormat, noColor)

	rl, err := readline.NewEx(&readline.Config{Prompt: "pattern> "})
	if err != nil {
		formatter.PrintError("failed to start readline: %v", err)
		exitWithError("failed to start repl")
		return
	}
	defer rl.Close()

	var nfa *lexgen.NFA
	var pattern string

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			formatter.PrintError("readline: %v", err)
			return
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return
		case strings.HasPrefix(line, ":pattern "):
			pattern = strings.TrimSpace(strings.TrimPrefix(line, ":pattern "))
			built, err := lexgen.TranslateAndBuild(pattern)
			if err != nil {
				formatter.PrintError("failed to build NFA for %q: %v", pattern, err)
				nfa = nil
				continue
			}
			nfa = built
			rl.SetPrompt(fmt.Sprintf("%s> ", pattern))
			formatter.PrintInfo("built NFA with %d states", nfa.Arena.Len())
		default:
			if nfa == nil {
				formatter.PrintError("no pattern set; use \":pattern <regex>\" first")
				continue
			}
			result := lexgen.Simulate(nfa, line)
			r := &output.SimulateResult{
				Pattern:  pattern,
				Word:     line,
				Accepted: result.Accepted,
				Tagged:   result.Accepted && result.Tag != lexgen.NoTag,
				RuleTag:  int(result.Tag),
			}
			if err := formatter.FormatSimulateResult(r); err != nil {
				formatter.PrintError("failed to format output: %v", err)
			}
		}
	}
}
