package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/driver"
	"gdtoolkit/internal/format"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format GDScript files",
		Long:  `Fmt rewrites .gd files in place; directories are searched recursively`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	cmd.Flags().Bool("check", false, "report files that would be reformatted without writing them")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Int("line-length", 0, "maximum line length (0 uses the configuration)")
	cmd.Flags().Int("use-spaces", 0, "indent with this many spaces instead of tabs (0 uses the configuration)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	globals, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	formatOpts, err := fmtOptions(cmd)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		MaxDiagnostics: globals.maxDiagnostics,
		Jobs:           globals.jobs,
		Options:        formatOpts,
		Timer:          globals.timer(),
	}
	run := func(sink driver.ProgressSink) ([]driver.FormatResult, error) {
		o := opts
		o.Progress = sink
		return driver.FormatPaths(cmd.Context(), args, o)
	}

	var results []driver.FormatResult
	if !writeToStdout && !globals.quiet && shouldUseTUI(globals.ui) {
		files, err := driver.CollectSourceFiles(cmd.Context(), args)
		if err != nil {
			return err
		}
		results, err = runWithUI("formatting", files, run)
		if err != nil {
			return err
		}
	} else if results, err = run(nil); err != nil {
		return err
	}
	defer printTimings(cmd, opts.Timer)

	out := cmd.OutOrStdout()
	failed := reportFmtErrors(cmd, results)
	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(out, results, check); err != nil {
			return err
		}
	case writeToStdout:
		for _, res := range results {
			if res.Err == nil {
				if _, err := out.Write(res.Formatted); err != nil {
					return err
				}
			}
		}
	case !globals.quiet:
		renderFmtText(out, results, check)
	}

	if failed {
		return errReported
	}
	if check && countChanged(results) > 0 {
		return errReported
	}
	return nil
}

// fmtOptions merges the [format] configuration with command-line overrides.
func fmtOptions(cmd *cobra.Command) (format.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return format.Options{}, err
	}
	opts := format.Options{
		LineLength:  cfg.Format.LineLength,
		IndentWidth: cfg.Format.IndentWidth,
		UseSpaces:   cfg.Format.UseSpaces,
	}
	lineLength, err := cmd.Flags().GetInt("line-length")
	if err != nil {
		return opts, err
	}
	if lineLength > 0 {
		opts.LineLength = lineLength
	}
	spaces, err := cmd.Flags().GetInt("use-spaces")
	if err != nil {
		return opts, err
	}
	if spaces > 0 {
		opts.UseSpaces = true
		opts.IndentWidth = spaces
	}
	return opts, nil
}

func reportFmtErrors(cmd *cobra.Command, results []driver.FormatResult) bool {
	failed := false
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed = true
		if err := printDiagnostics(cmd, res.Bag, res.FileSet); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "fmt: %v\n", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "fmt: %s: %v\n", res.Path, res.Err)
	}
	return failed
}

func countChanged(results []driver.FormatResult) int {
	n := 0
	for _, res := range results {
		if res.Err == nil && res.Changed {
			n++
		}
	}
	return n
}

func renderFmtText(out io.Writer, results []driver.FormatResult, check bool) {
	unchanged := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
		case !res.Changed:
			unchanged++
		case check:
			fmt.Fprintf(out, "would reformat %s\n", res.Path)
		default:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	changed := countChanged(results)
	if check {
		fmt.Fprintf(out, "%s would be reformatted, %s would be left unchanged.\n", fileCount(changed), fileCount(unchanged))
		return
	}
	fmt.Fprintf(out, "%s reformatted, %s left unchanged.\n", fileCount(changed), fileCount(unchanged))
}

func fileCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
