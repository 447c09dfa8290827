// Package main provides the CLI entrypoint for timetable-merge.
//
// timetable-merge fills the week block of an NS exchange document from a
// grid timetable export:
//   - correlates grid lesson labels with the NS lesson plan of each class
//   - lets reviewers settle the rest via a YAML decisions file or a local API
//   - writes the NS document with the assembled week spliced in
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
