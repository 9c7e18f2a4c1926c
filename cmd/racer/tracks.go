package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List bundled track presets",
	Long:  `Shows the track presets embedded in the racer binary.`,
	Run:   runTracks,
}

func runTracks(cmd *cobra.Command, args []string) {
	presets, err := config.Presets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(presets) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Available tracks:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %4s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Laps", "Layout")
	fmt.Printf("  %-*s  %-*s  %4s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	// Print tracks
	for _, p := range presets {
		fmt.Printf("  %-*s  %-*s  %4d  %s\n", maxIDLen, p.ID, maxNameLen, p.Name, p.Laps, p.Track)
	}

	fmt.Println()
	fmt.Println("Run 'racer play --track <id>' to race on a track.")
}
