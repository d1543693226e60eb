package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/name-jumper/internal/core"
	"github.com/vovakirdan/name-jumper/internal/platform/tui"
	"github.com/vovakirdan/name-jumper/internal/storage"
)

var (
	flagName    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session in this terminal. Without --name a prompt asks for one.

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Restart (after the session ended)
  B/Esc      - Enter a different name (after the session ended)
  Ctrl+S     - Save a text screenshot to ~/.jumpgame/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower scrolling
  normal - The configured values
  hard   - Faster scrolling and tighter letter spacing

Examples:
  jumpgame play
  jumpgame play --name "Grace Hopper"
  jumpgame play --difficulty easy
  jumpgame play --config ./my-jump.yaml
  jumpgame play --log-file ./jump.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagName, "name", "", "Name to play (skips the prompt)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs (collisions, outcomes) to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	st := tui.Settings{
		Game:          gameCfg,
		Runtime:       rt,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}

	// The terminal belongs to the game, so debug logs only go to a file
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		st.Logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "jumpgame",
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	st.Store = store

	askName := !cmd.Flags().Changed("name")
	if err := tui.Run(st, flagName, askName); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
