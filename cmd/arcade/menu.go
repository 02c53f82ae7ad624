package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-arcade/internal/platform/tui"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game. Games with
more than one mode ask for the mode and a difficulty first.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	configureGames()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		selection := tui.ModeSelection{GameID: result.Item.GameID}
		if result.Item.HasModes() {
			sel, quit, err := tui.RunModeSelector(result.Item, cfg)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			if sel == nil {
				continue
			}
			selection = *sel
		}

		game, err := registry.Create(selection.GameID)
		if err != nil {
			log.Error("could not create game", "game", selection.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		log.Info("starting game", "game", selection.GameID, "difficulty", selection.Difficulty)

		backToMenu, err := tui.Run(game, store, cfg, tui.WithDifficulty(selection.Difficulty))
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
