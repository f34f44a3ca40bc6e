package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brochure-dev/brochure/internal/progress"
	"github.com/brochure-dev/brochure/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the content documents",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	if verbose {
		if cfg.ContentURL != "" {
			fmt.Printf("Content source: %s\n", cfg.ContentURL)
		} else {
			fmt.Printf("Content source: %s\n", cfg.DataDir)
		}
	}

	builder := site.NewBuilder(newStore(cfg), outputDir)
	builder.Reporter = progress.NewReporter()

	if err := builder.Build(cmd.Context()); err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s\n", outputDir)
	return nil
}
