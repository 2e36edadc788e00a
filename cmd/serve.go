package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hana-site/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long:  `Serves the page, the reservation form handler, the JSON content API, the live view channel and the allowed assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		srv, err := web.New(web.Config{
			Port:              cfg.Server.Port,
			SiteName:          cfg.SiteName,
			AllowAllOrigins:   cfg.Server.AllowAllOrigins,
			ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
			ScrollThreshold:   cfg.View.ScrollThreshold,
			AssetsDir:         cfg.Assets.Dir,
			AssetIncludes:     cfg.Assets.Include,
		}, slog.Default())
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownDone := make(chan error, 1)
		go func() {
			<-ctx.Done()
			slog.Info("shutting down server")
			shutdownCtx, cancel := context.Background(), context.CancelFunc(func() {})
			if secs := cfg.Server.ShutdownTimeoutSeconds; secs > 0 {
				shutdownCtx, cancel = context.WithTimeout(shutdownCtx, time.Duration(secs)*time.Second)
			}
			defer cancel()
			shutdownDone <- srv.Shutdown(shutdownCtx)
		}()

		slog.Info("hana starting", "version", Version, "port", cfg.Server.Port, "site", cfg.SiteName)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return <-shutdownDone
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
