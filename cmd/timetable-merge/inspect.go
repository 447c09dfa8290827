package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"timetable-merge/internal/pipeline"
)

type inspectOptions struct {
	dump bool
}

func newInspectCmd(a *app) *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse both documents and summarise what was read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			printInspect(cmd.OutOrStdout(), s, opts)
			a.logDiagnostics(s.NS.Diagnostics)

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the parsed classes of both documents")

	return cmd
}

func printInspect(w io.Writer, s *pipeline.Session, opts inspectOptions) {
	fmt.Fprintf(w, "NS: %d rooms, %d teachers, %d subjects, %d classes\n",
		len(s.NS.Rooms), len(s.NS.Teachers), len(s.NS.Subjects), len(s.NS.Classes))
	fmt.Fprintf(w, "grid: %d classes, %d days x %d slots\n",
		len(s.Grid.Classes), s.Grid.Days, s.Grid.Slots)

	for _, c := range s.NS.Classes {
		labels := 0
		if g, ok := s.Grid.ClassByName(c.Name); ok {
			labels = g.Labels.Len()
		}
		fmt.Fprintf(w, "  %-6s plan=%d labels=%d students=%d\n", c.Name, len(c.Plan), labels, c.Students)
	}

	if !opts.dump {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	cfg.Fdump(w, s.NS.Classes)
	cfg.Fdump(w, s.Grid.Classes)
}
