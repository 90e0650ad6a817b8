// Package output formats CLI results for the lexgen tool: colorized text
// or JSON, adapted from
// theakshaypant-regret/internal/cli/output.Formatter (same format switch
// and colorize helper, new result shapes for NFA/DFA/simulate instead of
// ReDoS issues).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter handles output formatting for the lexgen CLI.
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter creates a new Formatter writing to stdout in format
// (text|json), with color enabled unless noColor is set.
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{writer: os.Stdout, format: format, noColor: noColor}
}

// BuildResult is the outcome of the `build` command: how many states the
// constructed automaton has, and whether it was subsequently determinized.
type BuildResult struct {
	Pattern     string
	NFAStates   int
	Determinize bool
	DFAStates   int
}

// SimulateResult is the outcome of the `simulate` command.
type SimulateResult struct {
	Pattern  string
	Word     string
	Accepted bool
	RuleTag  int
	Tagged   bool
}

// FormatBuildResult formats a BuildResult.
func (f *Formatter) FormatBuildResult(result *BuildResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	default:
		return f.formatBuildText(result)
	}
}

func (f *Formatter) formatBuildText(result *BuildResult) error {
	fmt.Fprintf(f.writer, "Pattern: %s\n", f.colorize(result.Pattern, color.FgCyan))
	fmt.Fprintf(f.writer, "NFA states: %d\n", result.NFAStates)
	if result.Determinize {
		fmt.Fprintf(f.writer, "DFA states: %d\n", result.DFAStates)
	}
	return nil
}

// FormatSimulateResult formats a SimulateResult.
func (f *Formatter) FormatSimulateResult(result *SimulateResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	default:
		return f.formatSimulateText(result)
	}
}

func (f *Formatter) formatSimulateText(result *SimulateResult) error {
	if result.Accepted {
		fmt.Fprintf(f.writer, "%s %q accepted by /%s/\n", f.colorize("✓", color.FgGreen), result.Word, result.Pattern)
		if result.Tagged {
			fmt.Fprintf(f.writer, "Matched rule: %d\n", result.RuleTag)
		}
	} else {
		fmt.Fprintf(f.writer, "%s %q rejected by /%s/\n", f.colorize("✗", color.FgRed), result.Word, result.Pattern)
	}
	return nil
}

func (f *Formatter) encode(v interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

// PrintError prints an error message to stderr.
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("Error:", color.FgRed), msg)
}

// PrintInfo prints an info message.
func (f *Formatter) PrintInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Info:", color.FgCyan), msg)
}
