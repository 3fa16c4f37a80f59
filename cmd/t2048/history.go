package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryRecent bool
	flagHistoryTUI    bool
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show finished sessions",
	Long: `Display finished sessions for a rule set, best first.
Sessions are ranked by largest tile, then by fewest moves.

Examples:
  t2048 history
  t2048 history strict --recent
  t2048 history --tui
  t2048 history classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "Order by date instead of by tile")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Open the interactive history table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all sessions of the rule set")
}

func runHistory(_ *cobra.Command, args []string) error {
	variantID := appConfig.Game.Variant
	if len(args) == 1 {
		variantID = args[0]
	}

	if _, ok := registry.Lookup(variantID); !ok {
		return fmt.Errorf("unknown variant %q, run 't2048 list' to see available rule sets", variantID)
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryTUI {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH, variantID)
		return err
	}

	if flagHistoryClear {
		if err := store.ClearResults(variantID); err != nil {
			return err
		}
		logger.Info("history cleared", "variant", variantID)
		return nil
	}

	var results []storage.Result
	if flagHistoryRecent {
		results, err = store.RecentResults(variantID, flagHistoryLimit)
	} else {
		results, err = store.BestResults(variantID, flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}

	fmt.Printf("Sessions - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to record the first one!\n", variantID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "Rank", "Max Tile", "Moves", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "----", "--------", "-----", "-------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-6d  %-9s  %s\n",
			i+1, r.MaxTile, r.Moves, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.VariantStats(variantID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best tile: %d  Avg moves: %.0f\n", stats.Games, stats.BestTile, stats.AvgMoves)
	}
	return nil
}
