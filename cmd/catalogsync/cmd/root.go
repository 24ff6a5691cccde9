package cmd

import (
	"fmt"
	"os"
	"time"

	"catalogsync/internal/config"
	"catalogsync/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg *config.Config
	log *slog.Logger

	feedURL      string
	syncInterval time.Duration
	runAddress   string
)

var rootCmd = &cobra.Command{
	Use:   "catalogsync",
	Short: "Catalogsync keeps a local product catalog in sync with a Shopify-style feed",
	Long: `Catalogsync pulls a products.json feed on a schedule, upserts products
with their variants, images and options into Postgres, and serves the catalog
over a JSON API and a small server-rendered UI.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Command line flags win over environment configuration.
	if feedURL != "" {
		cfg.Feed.URL = feedURL
	}
	if syncInterval != 0 {
		cfg.Feed.SyncInterval = syncInterval
	}
	if runAddress != "" {
		cfg.Server.RunAddress = runAddress
	}

	log = logger.New(cfg.Env)

	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&feedURL, "feed-url", "", "products.json feed URL")
	rootCmd.PersistentFlags().DurationVar(&syncInterval, "sync-interval", 0, "interval between sync passes")
	rootCmd.PersistentFlags().StringVar(&runAddress, "address", "", "address the HTTP server listens on")
}
