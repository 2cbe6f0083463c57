package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/config"
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/diagfmt"
	"gdtoolkit/internal/observ"
	"gdtoolkit/internal/source"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	ui             uiMode
}

func readGlobals(cmd *cobra.Command) (globalFlags, error) {
	flags := cmd.Root().PersistentFlags()
	var g globalFlags
	var err error
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, err
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, err
	}
	if g.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return g, err
	}
	if g.jobs, err = flags.GetInt("jobs"); err != nil {
		return g, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return g, err
	}
	if g.ui, err = readUIMode(uiValue); err != nil {
		return g, err
	}
	return g, nil
}

func (g globalFlags) timer() *observ.Timer {
	if !g.timings {
		return nil
	}
	return observ.NewTimer()
}

// printTimings writes the timer summary to stderr.
func printTimings(cmd *cobra.Command, t *observ.Timer) {
	if t == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), t.Summary())
}

// printDiagnostics writes bag to stderr in the pretty layout.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	return diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: color, Context: 2, ShowNotes: true})
}

// loadConfig reads gdtoolkit.toml and gdlintrc for the working directory.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
