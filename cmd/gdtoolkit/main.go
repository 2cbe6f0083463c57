package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gdtoolkit/internal/version"
)

// errReported is returned by commands that already printed why they failed;
// main only sets the exit status.
var errReported = errors.New("failure reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gdtoolkit",
		Short:         "GDScript tokenizer, parser, formatter and linter",
		Long:          `gdtoolkit parses GDScript files and formats or lints them`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(cmd); err != nil {
				return err
			}
			return setupProfiling(cmd)
		},
	}

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	root.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	root.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")
	root.PersistentFlags().String("ui", "auto", "progress UI for fmt and lint (auto|on|off)")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(newTokenizeCmd(), newParseCmd(), newFmtCmd(), newLintCmd(), newVersionCmd())
	return root
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		dumpTraceOnFailure(root)
	}
	if profErr := stopProfiling(); profErr != nil {
		fmt.Fprintf(os.Stderr, "gdtoolkit: %v\n", profErr)
	}
	if closeErr := closeTracing(root); closeErr != nil {
		fmt.Fprintf(os.Stderr, "gdtoolkit: %v\n", closeErr)
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "gdtoolkit: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
