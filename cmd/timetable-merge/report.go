package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetable-merge/internal/correlate"
	"timetable-merge/internal/report"
)

type reportOptions struct {
	output string
}

func newReportCmd(a *app) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an Excel workbook of the correlations and the assembled week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			s.View(func(c *correlate.Correlator) {
				err = report.WriteFile(opts.output, c.Classes(), s.Grid.Days, s.Grid.Slots)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.output, "output", "timetable-review.xlsx", "Workbook path")

	return cmd
}
