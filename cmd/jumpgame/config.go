package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/name-jumper/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default YAML. Save it to ~/.jumpgame/config.yaml or
./configs/jump.yaml and edit it to change the world and physics.

With --effective, print the configuration play would use after the config
search and the difficulty preset are applied.

Examples:
  jumpgame config > ~/.jumpgame/config.yaml
  jumpgame config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
