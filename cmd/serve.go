package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpapi "task-tracker.com/task-tracker/internal/http"
)

var serveSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Opens the task store and serves the task API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serveSeed {
			if _, err := a.seed(ctx, "", false); err != nil {
				return err
			}
		}

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		handler := httpapi.NewHandler(a.taskService, a.cfg.AppPort, a.log)
		httpapi.Register(e, handler, a.log, a.cfg.CORSAllowedOrigins)

		errCh := make(chan error, 1)
		go func() {
			a.log.Info().Str("addr", a.cfg.AppURL()).Msg("HTTP server listening")
			if err := e.Start(a.cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
		case err := <-errCh:
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			a.log.Error().Err(err).Msg("HTTP server shutdown")
		}

		a.log.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "add the sample tasks when the store is empty")
	rootCmd.AddCommand(serveCmd)
}
