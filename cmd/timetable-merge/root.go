package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"timetable-merge/internal/config"
	"timetable-merge/internal/diagnostic"
	"timetable-merge/internal/logger"
	"timetable-merge/internal/mapping"
	"timetable-merge/internal/pipeline"
)

// app is the state shared by all commands of one run.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

type rootOptions struct {
	ns        string
	grid      string
	decisions string
	encoding  string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	a := &app{}

	cmd := &cobra.Command{
		Use:           "timetable-merge",
		Short:         "Fill the week block of an NS document from a grid timetable export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ns, "ns", "", "NS exchange document (env TTM_NS_FILE)")
	pf.StringVar(&opts.grid, "grid", "", "Grid HTML export (env TTM_GRID_FILE)")
	pf.StringVar(&opts.decisions, "decisions", "", "Decisions YAML file (env TTM_DECISIONS_FILE, default decisions.yaml)")
	pf.StringVar(&opts.encoding, "encoding", "", "Encoding of both documents (env TTM_ENCODING, default windows-1251)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (env LOG_LEVEL)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: json or pretty (env LOG_FORMAT)")

	cmd.AddCommand(
		newInspectCmd(a),
		newSuggestCmd(a),
		newCandidatesCmd(a),
		newCheckCmd(a),
		newMergeCmd(a),
		newReportCmd(a),
		newServeCmd(a),
	)

	return cmd
}

func (a *app) configure(cmd *cobra.Command, opts rootOptions) error {
	cfg := config.Load()

	flags := cmd.Flags()
	override(flags, "ns", &cfg.NSFile, opts.ns)
	override(flags, "grid", &cfg.GridFile, opts.grid)
	override(flags, "decisions", &cfg.DecisionsFile, opts.decisions)
	override(flags, "encoding", &cfg.Encoding, opts.encoding)
	override(flags, "log-level", &cfg.LogLevel, opts.logLevel)
	override(flags, "log-format", &cfg.LogFormat, opts.logFormat)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, _ := logger.WithRun(logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()))

	a.cfg = cfg
	a.log = log.With().Str("command", cmd.Name()).Logger()

	return nil
}

func override(flags *pflag.FlagSet, name string, dst *string, value string) {
	if flags.Changed(name) {
		*dst = value
	}
}

// load parses both input documents.
func (a *app) load(ctx context.Context) (*pipeline.Session, error) {
	if err := a.cfg.RequireInputs(); err != nil {
		return nil, err
	}

	enc, err := a.cfg.TextEncoding()
	if err != nil {
		return nil, err
	}

	s, err := pipeline.Load(ctx, pipeline.Sources{
		NSPath:   a.cfg.NSFile,
		GridPath: a.cfg.GridFile,
		Encoding: enc,
	}, a.log)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to load documents")
		return nil, err
	}

	return s, nil
}

// session loads both documents and correlates them, honouring the
// decisions file.
func (a *app) session(ctx context.Context) (*pipeline.Session, error) {
	s, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	df, err := mapping.LoadFile(a.cfg.DecisionsFile)
	if err != nil {
		return nil, err
	}

	diags, err := s.Correlate(df)
	a.logDiagnostics(diags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.DecisionsFile, err)
	}

	return s, nil
}

func (a *app) logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var event *zerolog.Event
		switch d.Severity {
		case diagnostic.SeverityError:
			event = a.log.Error()
		case diagnostic.SeverityWarning:
			event = a.log.Warn()
		default:
			event = a.log.Debug()
		}

		event.Str("code", d.Code).Str("class", d.Class).Str("lesson", d.Lesson).
			Strs("suggestions", d.Suggestions).Msg(d.Message)
	}
}
