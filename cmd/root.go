package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hana-site/internal/config"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "hana",
	Short: "Hana Ramen restaurant site",
	Long: `hana serves the single-page Hana Ramen site: the menu with its three
tabs, the story, gallery and reviews, and the reservation form. It can also
export the page as static files and print the menu in a terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(os.Stderr, logLevel, logFormat)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".hana.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json (overrides config)")
}

// setupLogging installs the default slog logger. Empty arguments fall back
// to the config file, then to info/console.
func setupLogging(w io.Writer, level, format string) error {
	if level == "" || format == "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		if level == "" {
			level = cfg.Logging.Level
		}
		if format == "" {
			format = string(cfg.Logging.Format)
		}
	}

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info", "":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	switch config.LogFormat(format) {
	case config.LogFormatConsole, "":
		handler = slog.NewTextHandler(w, opts)
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
