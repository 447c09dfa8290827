package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"timetable-merge/internal/server"
	"timetable-merge/internal/validator"
)

type serveOptions struct {
	listen string
}

func newServeCmd(a *app) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the manual resolution API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listen != "" {
				a.cfg.ListenAddr = opts.listen
			}

			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			validator.Setup()

			r := server.NewRouter(s, server.Options{
				GinMode:        a.cfg.GinMode,
				AllowedOrigins: a.cfg.AllowedOrigins,
				DecisionsPath:  a.cfg.DecisionsFile,
				OutputPath:     a.cfg.OutputPath(),
			}, a.log)

			return serve(cmd.Context(), a, r)
		},
	}

	cmd.Flags().StringVar(&opts.listen, "listen", "", "Listen address (env TTM_LISTEN_ADDR)")

	return cmd
}

func serve(ctx context.Context, a *app, h http.Handler) error {
	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
