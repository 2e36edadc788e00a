package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to hana! Let's configure the site server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory holding images/ and static/",
		Default: cfg.Assets.Dir,
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	cfg.Assets.Dir = assetsDir
	if _, statErr := os.Stat(assetsDir); os.IsNotExist(statErr) {
		fmt.Printf("Note: %s does not exist yet; gallery images will 404 until it does.\n", assetsDir)
	}

	// 4. Export directory.
	exportPrompt := promptui.Prompt{
		Label:   "Output directory for static export",
		Default: cfg.Export.OutputDir,
	}
	outputDir, err := exportPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}
	cfg.Export.OutputDir = outputDir

	// 5. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console — human readable",
			"json    — one object per line",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Logging.Format = []LogFormat{LogFormatConsole, LogFormatJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
