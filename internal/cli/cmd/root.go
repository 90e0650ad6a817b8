// Package cmd implements the lexgen CLI, a development/debugging surface
// over the lexgen core (build, simulate, determinize, dump). Adapted from
// theakshaypant-regret/internal/cli/cmd's cobra command registration and
// persistent-flag pattern.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexgen-dev/lexgen/internal/cli/config"
)

var (
	outputFormat string
	noColor      bool
	configFile   string
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lexgen",
	Short: "Build and exercise NFA/DFA automata from regular expressions",
	Long: `lexgen is a development tool over the lexgen core library: it
translates a regular expression into an NFA via Thompson construction,
simulates it against input words, determinizes it into a DFA via subset
construction, and can dump either automaton as a Graphviz digraph.

This CLI is a debugging surface, not the lexer generator's code-emission
output.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (TOML)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	if !cmd.Flags().Changed("output") && cfg.OutputFormat != "" {
		outputFormat = cfg.OutputFormat
	}
	if !cmd.Flags().Changed("no-color") && cfg.NoColor {
		noColor = true
	}
	return nil
}

func exitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
