package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timetable-merge/internal/pipeline"
)

type mergeOptions struct {
	force  bool
	output string
}

func newMergeCmd(a *app) *cobra.Command {
	var opts mergeOptions

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Write the NS document with the assembled week block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" {
				a.cfg.OutputFile = opts.output
			}

			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			out, stats, err := s.Merge(opts.force)
			if errors.Is(err, pipeline.ErrIncomplete) {
				return withCode(exitIncomplete, fmt.Errorf("%w (use --force to merge anyway)", err))
			}
			if err != nil {
				return err
			}

			a.logDiagnostics(stats.Diagnostics())

			path := a.cfg.OutputPath()
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "placed %d lessons, skipped %d; wrote %s\n",
				stats.Placed, stats.Skipped, path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Merge even when classes are incomplete")
	cmd.Flags().StringVar(&opts.output, "output", "", "Output file (env TTM_OUTPUT_FILE, default <ns>.merged<ext>)")

	return cmd
}
