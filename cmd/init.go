package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/hana-site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a hana configuration file with an interactive wizard",
	Long:  `Runs an interactive wizard for the site name, port, assets and export directories and log format, and writes the result to the --config path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
