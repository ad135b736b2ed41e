package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studyplan/internal/bootstrap"
	"studyplan/internal/platform/config"
	"studyplan/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataPath string
	verbose  bool
	json     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Study planner: subjects, timed sessions, goals and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataPath, "data", ".", "data directory")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newSubjectCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newScheduleCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newInsightsCmd(opts))
	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newSyncCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newClearCmd(opts))
	return root
}

func loadApp(ctx context.Context, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.dataPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(opts.verbose || cfg.Log.Verbose)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, logger)
}

// withApp loads the app for one command invocation and closes it after fn.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := loadApp(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Logger.Sync()
		_ = app.Close()
	}()
	return fn(ctx, app)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if addr == "" {
					addr = app.Config.HTTP.Addr
				}
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				srv := &http.Server{
					Addr:              addr,
					Handler:           app.HTTPHandler(),
					ReadHeaderTimeout: 5 * time.Second,
				}
				errCh := make(chan error, 1)
				go func() {
					errCh <- srv.ListenAndServe()
				}()
				app.Logger.Info("http api listening", zap.String("addr", addr))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listening on http://%s\n", addr)

				select {
				case err := <-errCh:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return err
				case <-ctx.Done():
				}
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				app.Logger.Info("http api shutting down")
				return srv.Shutdown(shutdownCtx)
			})
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config http.addr)")
	return serve
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every local planner record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear local data without --yes")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ClearLocal(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "local data cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return clearCmd
}
