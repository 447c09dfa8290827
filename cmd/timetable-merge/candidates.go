package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"timetable-merge/internal/pipeline"
)

type candidatesOptions struct {
	class  string
	lesson string
}

func newCandidatesCmd(a *app) *cobra.Command {
	var opts candidatesOptions

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List the ordered label choices for the lessons of one class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			lessons, err := s.Lessons(opts.class)
			if err != nil {
				return err
			}

			printCandidates(cmd.OutOrStdout(), lessons, opts.lesson)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.class, "class", "", "Class name (required)")
	cmd.Flags().StringVar(&opts.lesson, "lesson", "", "Only this NS lesson id")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func printCandidates(w io.Writer, lessons []pipeline.LessonView, only string) {
	for _, l := range lessons {
		if only != "" && l.ID != only {
			continue
		}

		fmt.Fprintf(w, "%s %s (%s)\n", l.ID, l.Subject, l.Teacher)
		for i, c := range l.Candidates {
			mark := " "
			if c == l.Label && l.Label != "" {
				mark = "*"
			}

			text := string(c)
			if c == "" {
				text = "(none)"
			}

			fmt.Fprintf(w, "  %s %2d. %s\n", mark, i+1, text)
		}
	}
}
