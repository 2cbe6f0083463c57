package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/trace"
)

// setupTracing reads the --trace flags and attaches the tracer to
// the command context.
func setupTracing(cmd *cobra.Command) error {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	// --trace alone means phase level
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}

	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: traceOutput})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	root.SetContext(ctx)
	return nil
}

// closeTracing flushes the tracer of cmd's context.
func closeTracing(cmd *cobra.Command) error {
	tracer := trace.FromContext(cmd.Context())
	if err := tracer.Flush(); err != nil {
		return fmt.Errorf("trace: flush error: %w", err)
	}
	return tracer.Close()
}

// dumpTraceOnFailure writes the in-memory events kept at --trace-level=error.
func dumpTraceOnFailure(cmd *cobra.Command) {
	if err := trace.DumpOnFailure(trace.FromContext(cmd.Context()), os.Stderr); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
	}
}
