package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/games/carshoot"
	"github.com/vovakirdan/sprite-arcade/internal/games/roadrace"
	"github.com/vovakirdan/sprite-arcade/internal/platform/tui"
	"github.com/vovakirdan/sprite-arcade/internal/platform/window"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse/A/D/Left/Right  - Aim the gun (Car Shoot)
  Space/Click           - Fire (Car Shoot)
  W/S/Up/Down/,/O       - Steer (Road Race)
  P                     - Pause
  R                     - Restart (after game over)
  B/Esc                 - Back to menu
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play carshoot
  arcade play carshoot_practice
  arcade play roadrace --difficulty hard
  arcade play roadrace --window
  arcade play carshoot --config ./my-carshoot.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor (with --window)")
}

// configureGames hands the CLI config path and difficulty to every game.
func configureGames() {
	carshoot.SetConfigPath(flagConfig)
	carshoot.SetDifficultyPreset(flagDifficulty)
	roadrace.SetConfigPath(flagConfig)
	roadrace.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	configureGames()
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	log.Info("starting game", "game", gameID, "difficulty", flagDifficulty, "window", flagWindow)

	if flagWindow {
		_, err = window.Run(game, window.Options{
			Config:     cfg,
			Store:      store,
			Difficulty: flagDifficulty,
			Logger:     log.Default(),
			Scale:      flagScale,
		})
	} else {
		_, err = tui.Run(game, store, cfg, tui.WithDifficulty(flagDifficulty))
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
