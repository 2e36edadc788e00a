package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hana-site/internal/export"
	"github.com/ziadkadry99/hana-site/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long:  `Writes one HTML page per menu tab, the stylesheet, menu.json and every asset matching assets.include into the export directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export.output_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}

	exporter := &export.Exporter{
		OutputDir:       outputDir,
		AssetsDir:       cfg.Assets.Dir,
		AssetIncludes:   cfg.Assets.Include,
		SiteName:        cfg.SiteName,
		ScrollThreshold: cfg.View.ScrollThreshold,
		Reporter:        progress.NewReporter(cmd.ErrOrStderr()),
		Logger:          slog.Default(),
	}
	res, err := exporter.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site written to %s (%d pages, %d assets copied, %d unchanged)\n",
		outputDir, res.Pages, res.Assets, res.Skipped)
	return nil
}
