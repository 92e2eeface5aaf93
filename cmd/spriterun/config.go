package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings as YAML after loading the config file and applying
the difficulty preset. The output is a valid config file.

Examples:
  spriterun config > ~/.spriterun/spriterun.yaml
  spriterun config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
