package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rtype/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the default config, ready to be saved and edited.

Config files are searched in this order:
  --config <path>
  ~/.rtype/configs/rtype.yaml
  ./configs/rtype.yaml
  built-in defaults

With --resolved, the config that would be used (after --config and
--difficulty are applied) is printed instead.

Examples:
  rtype config > ~/.rtype/configs/rtype.yaml
  rtype config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the resolved config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.LoadRType(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintf(out, "# source: %s, difficulty: %s\n", source, preset)
	_, err = out.Write(data)
	return err
}
