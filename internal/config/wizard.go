package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// .brochure.yml, and reports whether the user asked for starter content to
// be scaffolded.
func RunWizard() (*Config, bool, error) {
	fmt.Println("Welcome to brochure! Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()

	dataPrompt := promptui.Prompt{
		Label:   "Content directory (JSON documents)",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, false, fmt.Errorf("content directory: %w", err)
	}
	cfg.DataDir = dataDir

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, false, fmt.Errorf("output directory: %w", err)
	}
	cfg.OutputDir = outputDir

	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, false, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	scaffoldPrompt := promptui.Select{
		Label: "Create starter content documents",
		Items: []string{"yes", "no"},
	}
	scaffoldIdx, _, err := scaffoldPrompt.Run()
	if err != nil {
		return nil, false, fmt.Errorf("starter content: %w", err)
	}
	scaffold := scaffoldIdx == 0

	configPath := ".brochure.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, false, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, scaffold, nil
}
