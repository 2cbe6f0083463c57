package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/diagfmt"
	"gdtoolkit/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.gd",
		Short: "Parse a GDScript file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	globals, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	timer := globals.timer()
	phase := -1
	if timer != nil {
		phase = timer.Begin("parse")
	}
	result, err := driver.Parse(cmd.Context(), args[0], globals.maxDiagnostics)
	if timer != nil {
		timer.End(phase, args[0])
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	defer printTimings(cmd, timer)
	if format == "json" && result.Tree == nil {
		// JSON consumers get the diagnostics on stdout in place of the tree
		result.Bag.Sort()
		opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
		if err := diagfmt.JSON(cmd.OutOrStdout(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
		return errReported
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Tree == nil {
		return errReported
	}

	if format == "json" {
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Tree)
	}
	return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Tree)
}
