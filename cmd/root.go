package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brochure",
	Short: "Content-driven marketing site generator",
	Long: `Brochure builds a single-page marketing website from a handful of JSON
content documents. Content authors edit the documents; brochure renders
them into a self-contained static site and can serve it locally with
live reload while they work.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".brochure.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
