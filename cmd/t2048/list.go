package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rule sets",
	Long:  `Shows every registered rule set and how it merges tiles.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Println("Available rule sets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Merge", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range variants {
		marker := ""
		if v.ID == appConfig.Game.Variant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-6s  %s%s\n", maxIDLen, v.ID, v.Rule, v.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play.")
}
