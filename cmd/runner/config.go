package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/realm-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after applying the config
search order and the difficulty preset, as YAML.

Search order: --config, ~/.runner/configs/runner.yaml, ./configs/runner.yaml,
then the built-in defaults.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
