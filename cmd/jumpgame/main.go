// jumpgame is a terminal runner where the obstacles are the letters of your name.
//
// Usage:
//
//	jumpgame play            - Enter a name and jump over its letters
//	jumpgame serve           - Start SSH server for remote play
//	jumpgame results         - Show finished sessions and win/loss stats
//	jumpgame config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.jumpgame/results.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/name-jumper/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string

	// Shared by play and serve
	flagConfig     string
	flagDifficulty string
)

// logger reports CLI warnings and errors on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "jumpgame"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpgame",
	Short: "Jump over the letters of your name",
	Long: `jumpgame turns a name into a row of obstacles. Every letter scrolls in
from the right; jump over all of them to win, touch one and you lose.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  results  - View finished sessions
  config   - Print the default YAML configuration

Examples:
  jumpgame play --name "Ada Lovelace"
  jumpgame play --difficulty hard
  jumpgame serve --ssh :2222
  jumpgame results --name Ada`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumpgame/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that select world and physics settings.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.JumpConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.JumpConfig{}, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.JumpConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, cfg.Validate()
}
