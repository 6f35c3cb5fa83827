package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/web"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo app",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = flagAddr
		}

		logger := zaproute.GetLogger()
		server := web.New(demoApp(cfg), web.Options{
			Title:      "Router demonstration",
			Language:   cfg.Language,
			SessionTTL: cfg.Server.SessionTTL,
			Logger:     zaproute.GetInternalLogger(),
		})

		httpServer := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving", "addr", cfg.Server.Addr, "query_keyword", string(cfg.QueryKeyword))
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stats := server.Stats()
		logger.Info("shutting down", "sessions", stats.Sessions, "cycles", stats.Cycles)
		return httpServer.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides server.addr)")
}
