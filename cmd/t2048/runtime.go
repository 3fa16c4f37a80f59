package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// runtimeConfig builds the game runtime from the loaded config and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Game.TickRate
	cfg.Seed = appConfig.Game.Seed
	cfg.Spawn4Prob = appConfig.Game.Spawn4Probability
	return cfg
}

// openStore opens the results database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.Storage.Path, "error", err)
		return nil
	}
	return store
}
