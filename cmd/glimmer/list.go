package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-glimmer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all presets",
	Long:  `Shows a list of all page presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, p.ID, p.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'glimmer show <id>' to start a preset.")
}
