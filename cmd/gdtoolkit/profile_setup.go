package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/prof"
)

var profiling *prof.Session

// setupProfiling starts the profilers named by --cpu-profile, --mem-profile
// and --runtime-trace.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Heap, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if opts == (prof.Options{}) {
		return nil
	}
	profiling, err = prof.Start(opts)
	return err
}

func stopProfiling() error {
	err := profiling.Stop()
	profiling = nil
	return err
}
