package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a rule set picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a rule set.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select rule set
  Tab          - Session history
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH, "")
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.VariantID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.VariantID, "error", err)
			continue
		}

		// A fixed seed replays the same board every round
		if appConfig.Game.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if result.SaveErr != nil {
			logger.Warn("could not record session", "error", result.SaveErr)
		}
	}
}
