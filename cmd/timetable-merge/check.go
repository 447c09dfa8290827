package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report classes whose labels are not all correlated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			res := s.Check()

			out := cmd.OutOrStdout()
			for _, d := range res.Diagnostics.All() {
				fmt.Fprintf(out, "%-7s %s\n", d.Severity, d)
			}

			if !res.Complete {
				return withCode(exitIncomplete, fmt.Errorf("%d classes incomplete: %s",
					len(res.Incomplete), strings.Join(res.Incomplete, ", ")))
			}

			fmt.Fprintln(out, "all classes complete")

			return nil
		},
	}
}
