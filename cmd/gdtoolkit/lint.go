package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/diagfmt"
	"gdtoolkit/internal/driver"
	"gdtoolkit/internal/lint"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [flags] <path> [path...]",
		Short: "Check GDScript files for style problems",
		Args: func(cmd *cobra.Command, args []string) error {
			dump, err := cmd.Flags().GetBool("dump-config")
			if err != nil {
				return err
			}
			if dump {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: runLint,
	}
	cmd.Flags().Bool("dump-config", false, "print the effective gdlintrc and exit")
	cmd.Flags().Bool("cache", false, "reuse results for unchanged files from the user cache directory")
	cmd.Flags().String("format", "text", "output format (text|json)")
	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dump, err := cmd.Flags().GetBool("dump-config")
	if err != nil {
		return err
	}
	if dump {
		return cfg.Lint.DumpYAML(cmd.OutOrStdout())
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("lint: unsupported output format %q", outputFormat)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	globals, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	opts := driver.LintOptions{
		Config:         cfg.Lint,
		MaxDiagnostics: globals.maxDiagnostics,
		Jobs:           globals.jobs,
		Timer:          globals.timer(),
	}
	if useCache {
		cache, err := driver.OpenDiskCache("gdtoolkit")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lint: cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}
	run := func(sink driver.ProgressSink) ([]driver.LintResult, error) {
		o := opts
		o.Progress = sink
		return driver.LintPaths(cmd.Context(), args, o)
	}

	var results []driver.LintResult
	if outputFormat == "text" && !globals.quiet && shouldUseTUI(globals.ui) {
		files, err := driver.CollectSourceFiles(cmd.Context(), args)
		if err != nil {
			return err
		}
		results, err = runWithUI("linting", files, run)
		if err != nil {
			return err
		}
	} else if results, err = run(nil); err != nil {
		return err
	}
	defer printTimings(cmd, opts.Timer)

	failed := false
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed = true
		if err := printDiagnostics(cmd, res.Bag, res.FileSet); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lint: %v\n", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "lint: %s: %v\n", res.Path, res.Err)
	}

	total := 0
	for _, res := range results {
		total += len(res.Problems)
	}
	if outputFormat == "json" {
		if err := renderLintJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		color, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		pretty := diagfmt.PrettyOpts{Color: color}
		out := cmd.OutOrStdout()
		for _, res := range results {
			if err := diagfmt.Problems(out, res.Path, res.Problems, pretty); err != nil {
				return err
			}
		}
		if !globals.quiet || total > 0 {
			if err := diagfmt.ProblemsSummary(out, total, pretty); err != nil {
				return err
			}
		}
	}

	if failed || total > 0 {
		return errReported
	}
	return nil
}

func renderLintJSON(out io.Writer, results []driver.LintResult) error {
	type jsonResult struct {
		Path     string         `json:"path"`
		Problems []lint.Problem `json:"problems"`
		Cached   bool           `json:"cached,omitempty"`
		Error    string         `json:"error,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Problems: res.Problems, Cached: res.Cached}
		if jr.Problems == nil {
			jr.Problems = []lint.Problem{}
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
