package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a rule set",
	Long: `Start playing the given rule set, or the configured default.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play strict
  t2048 play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := appConfig.Game.Variant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, ok := registry.Lookup(variantID)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 't2048 list' to see available rule sets", variantID)
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	result, err := tui.Run(game, store, cfg)
	if err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	if result.SaveErr != nil {
		logger.Warn("could not record session", "error", result.SaveErr)
	}

	logger.Info("session ended",
		"variant", variantID,
		"rule", variant.Rule,
		"moves", result.State.Moves,
		"max_tile", result.State.MaxTile,
		"game_over", result.State.GameOver,
	)
	return nil
}
