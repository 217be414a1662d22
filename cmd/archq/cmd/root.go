package cmd

import (
	"fmt"
	"os"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "archq",
	Short: "archq - FPGA architecture pin addressing queries",
	Long: `archq inspects an FPGA architecture description and answers the
pin and class addressing queries the placement and routing engines rely on:
physical pin numbering, sub-tile and capacity resolution, class translation,
and human-readable pin naming.

Examples:
  archq info arch.desc                          # Summarize tiles and blocks
  archq pin arch.desc --tile CLOCK_TILE --index 2
  archq class arch.desc --tile CLB --num 0      # Flat class translation
  archq find arch.desc --tile CLB --port I --index 3`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadRegistry parses and builds the architecture named by the first
// positional argument.
func loadRegistry(args []string) (*arch.Registry, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("missing architecture description file")
	}
	if verbose {
		fmt.Printf("Loading architecture from: %s\n", args[0])
	}
	registry, err := arch.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to load architecture: %w", err)
	}
	return registry, nil
}

// lookupTile resolves the --tile flag against a loaded registry.
func lookupTile(registry *arch.Registry, name string) (*arch.PhysicalTileType, error) {
	tile, ok := registry.TileByName(name)
	if !ok {
		fmt.Printf("Tile '%s' not found.\n\nAvailable tiles:\n", name)
		for i, t := range registry.Tiles {
			fmt.Printf("  %d. %s (%d pins)\n", i+1, t.Name, t.NumPins)
		}
		return nil, fmt.Errorf("tile not found: %s", name)
	}
	return tile, nil
}
