package main

import (
	"github.com/spf13/cobra"

	"github.com/osteotek/crosspoint-reader/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "crosspoint",
	Short: "Text layout toolbox for the CrossPoint e-ink reader",
	Long: `crosspoint lays out plain-text books into fixed pages the way the
reader firmware does: rule-based hyphenation for Latin and Cyrillic
text, cost-minimizing line breaking, and a binary page cache that is
reused as long as the layout parameters stay the same.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"settings file (default ~/.crosspoint/config.yaml)")
}

func loadSettings() (config.Settings, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath).Load()
	}
	loader, err := config.NewLoader()
	if err != nil {
		return config.Default(), err
	}
	return loader.Load()
}
