package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shopapi/pkg/api"
	"shopapi/pkg/catalog/memory"
	"shopapi/pkg/order"
	"shopapi/pkg/otel"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(os.Stdout)
		if err != nil {
			return err
		}
		defer log.Sync()
		if listenAddr != "" {
			cfg.HTTP.Addr = listenAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		defer stop()

		tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Host:        cfg.Tracing.Host,
			Probability: cfg.Tracing.Probability,
		})
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdownTracing(context.Background())

		backend, closeBackend, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeBackend()

		store := memory.New()
		table := order.NewTable(ctx, cfg.Orders.Database, backend, log)
		handler := api.NewHandler(store, order.NewService(store, table, log), log, buildVersion)

		srv := &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      api.NewRouter(handler, log, tp.Tracer(cfg.Tracing.ServiceName)),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			defer close(errCh)
			log.Info(ctx, "listening", "addr", srv.Addr, "version", buildVersion, "orders_backend", backend.Kind())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info(context.Background(), "received interruption signal, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "error during server shutdown", "error", err)
			return err
		}
		log.Info(context.Background(), "shutdown complete")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr,
		"addr", "a", "", "Address to listen on (overrides HTTP_ADDR)")

	rootCmd.AddCommand(serveCmd)
}
