// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

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

	"github.com/Firstyear/checklists/internal/api"
	"github.com/Firstyear/checklists/internal/catalog"
	"github.com/Firstyear/checklists/internal/config"
	"github.com/Firstyear/checklists/internal/logger"
	"github.com/Firstyear/checklists/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the read-only web viewer for the photography checklists",
		Long: `Starts an HTTP server listing the built-in photography checklists.

  GET /list/         index of checklist names
  GET /list/{name}   one checklist
  GET /api/lists     JSON index
  GET /api/lists/{name}  one checklist in the checklist file format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = opts.cfg.ListenAddr()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWebServer(ctx, listen, func(addr string) {
				statusColor.Fprintf(cmd.OutOrStdout(), "Started http server: %s\n", addr)
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default from config, or "+config.DefaultListen+")")
	return cmd
}

// runWebServer serves the catalog until ctx is cancelled. The catalog is
// built once here and shared read-only by every request.
func runWebServer(ctx context.Context, addr string, started func(addr string)) error {
	pages, err := web.NewPages()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(catalog.Photography(), pages),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("Web server starting", "addr", addr)
	if started != nil {
		started(addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Web server shutting down", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown web server: %w", err)
	}
	return nil
}
