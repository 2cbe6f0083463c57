package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gdtoolkit/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			switch outputFormat {
			case "pretty":
				color, err := useColor(cmd, os.Stdout)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), version.Line(color))
				return err
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					Version   string `json:"version"`
					GitCommit string `json:"git_commit,omitempty"`
					BuildDate string `json:"build_date,omitempty"`
				}{version.Version, version.GitCommit, version.BuildDate})
			default:
				return fmt.Errorf("unsupported format: %s", outputFormat)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
