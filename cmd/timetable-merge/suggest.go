package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetable-merge/internal/mapping"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Run the automatic pass and write the decisions file for review",
		Long: "Correlates every class, keeping stored decisions that still apply, and\n" +
			"writes the result to the decisions file. Unresolved lessons list the\n" +
			"labels a reviewer may pick from.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			df := s.Decisions()
			if err := mapping.WriteFile(df, a.cfg.DecisionsFile); err != nil {
				return err
			}

			incomplete := s.Check().Incomplete
			a.log.Info().Str("path", a.cfg.DecisionsFile).Int("entries", df.Len()).
				Int("incomplete", len(incomplete)).Msg("decisions written")

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s (%d classes incomplete)\n",
				df.Len(), a.cfg.DecisionsFile, len(incomplete))

			return nil
		},
	}
}
