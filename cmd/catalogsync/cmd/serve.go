package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"catalogsync/internal/app/server/api"
	"catalogsync/internal/domain/sync"
	"catalogsync/internal/feed"
	"catalogsync/internal/infrastructure/storage/postgres"
	"catalogsync/internal/scheduler"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the periodic feed sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("storage init: %w", err)
		}
		defer storage.Close()

		syncer := newSyncService(storage)

		sched := scheduler.New("feed-sync", cfg.Feed.SyncInterval, func(ctx context.Context) error {
			_, err := syncer.Run(ctx)
			return err
		}, log)
		go sched.Run(ctx)

		server := &http.Server{
			Addr:    cfg.Server.RunAddress,
			Handler: api.New(storage, syncer, log),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("http server starting", "address", cfg.Server.RunAddress)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	},
}

func newSyncService(storage *postgres.Storage) *sync.Service {
	repo := postgres.NewProductRepository(storage, log)
	client := feed.NewClient(cfg.Feed.URL, log)
	parser := feed.NewParser(log)
	return sync.NewService(client, parser, repo, log)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
