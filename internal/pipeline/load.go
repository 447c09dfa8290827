package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"

	"timetable-merge/internal/grid"
	"timetable-merge/internal/nsdoc"
)

// Sources names the two input documents.
type Sources struct {
	NSPath   string
	GridPath string
	// Encoding of both documents.
	Encoding encoding.Encoding
}

// Load parses both documents concurrently and returns a session holding
// them. The first failure cancels the other parse and is returned as is, so
// docerr.Kind tells which document failed.
func Load(ctx context.Context, src Sources, log zerolog.Logger) (*Session, error) {
	var (
		raw []byte
		ns  *nsdoc.Document
		gd  *grid.Document
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := os.ReadFile(src.NSPath)
		if err != nil {
			return fmt.Errorf("failed to read NS document %s: %w", src.NSPath, err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := nsdoc.Parse(data, src.Encoding)
		if err != nil {
			return err
		}

		raw, ns = data, doc

		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := grid.ParseFile(src.GridPath, src.Encoding)
		if err != nil {
			return err
		}

		gd = doc

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("rooms", len(ns.Rooms)).
		Int("teachers", len(ns.Teachers)).
		Int("subjects", len(ns.Subjects)).
		Int("ns_classes", len(ns.Classes)).
		Int("grid_classes", len(gd.Classes)).
		Int("grid_lessons", gd.Lessons()).
		Int("slots", gd.Slots).
		Int("days", gd.Days).
		Msg("documents loaded")

	for _, w := range ns.Diagnostics.Warnings {
		log.Warn().Str("code", w.Code).Str("class", w.Class).Str("lesson", w.Lesson).Msg(w.Message)
	}

	return NewSession(ns, gd, raw, src.Encoding, log), nil
}
