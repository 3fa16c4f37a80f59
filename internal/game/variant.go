// Package game wraps the rules engine into a playable session: it owns the
// grid and the random source, turns input actions into moves, spawns tiles
// after effective moves and detects game over.
package game

import (
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Variant is a named rule set.
type Variant = registry.Variant

var (
	// Classic merges every equal pair once per move.
	Classic = Variant{ID: "classic", Title: "2048", Rule: engine.MergePerTile}
	// Strict allows a single merge per row or column per move.
	Strict = Variant{ID: "strict", Title: "2048 (One Merge Per Line)", Rule: engine.MergePerLine}
)

// Variants lists the built-in variants.
func Variants() []Variant {
	return []Variant{Classic, Strict}
}

func init() {
	for _, v := range Variants() {
		registry.Register(v, func() registry.Game {
			return New(v)
		})
	}
}
