// t2048 is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	t2048 list               - List available rule sets
//	t2048 play [variant]     - Play a rule set (default from config)
//	t2048 menu               - Start menu to pick rule sets interactively
//	t2048 history [variant]  - Show finished sessions
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.t2048/results.db)
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	_ "github.com/vovakirdan/tui-2048/internal/game" // Register variants
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagFPS      int
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the sliding-tile merge puzzle.

Slide all tiles in one direction; equal tiles that collide merge into
their sum. A new tile appears after every move that changes the board.
The game ends when no move can change the board.

Available commands:
  list     - Show all rule sets
  play     - Play a rule set directly
  menu     - Interactive rule set picker
  history  - View finished sessions
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play strict --seed 42
  t2048 menu
  t2048 serve --ssh :2222
  t2048 history classic`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/results.db", "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves file, environment and flag settings. Flags win when set.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
	logger.Debug("configuration loaded",
		"variant", cfg.Game.Variant,
		"db", cfg.Storage.Path,
		"tick_rate", cfg.Game.TickRate,
	)
	return nil
}
