package cmd

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/pinaddr"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <arch-file>",
	Short: "Summarize the tiles and blocks of an architecture",
	Long: `Summarize an architecture description: every physical tile type with its
sub tiles, capacities, root and flat pin counts, and class counts, plus
every logical block type with its pin-graph size.

Examples:
  archq info arch.desc
  archq info -v arch.desc`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(args)
	if err != nil {
		return err
	}

	fmt.Printf("Physical tile types: %d\n", len(registry.Tiles))
	for _, tile := range registry.Tiles {
		fmt.Printf("  %s: %d root pins, %d ptc values flat, %d root classes, %d primitive classes\n",
			tile.Name,
			tile.NumPins,
			pinaddr.TileMaxPtc(tile, true),
			len(tile.Classes),
			pinaddr.TileNumPrimitiveClasses(tile))
		if !verbose {
			continue
		}
		for _, st := range tile.SubTiles {
			fmt.Printf("    sub_tile %s capacity [%d:%d], %d pins per instance\n",
				st.Name, st.Capacity.Low, st.Capacity.High, st.InstNumPins())
			for _, site := range st.EquivalentSites {
				fmt.Printf("      site %s (%d pin-graph pins)\n", site.Name, site.TotalPbPins())
			}
			for _, port := range st.Ports {
				fmt.Printf("      %s %s[%d]\n", port.Dir, port.Name, port.NumPins)
			}
		}
	}

	fmt.Printf("Logical block types: %d\n", len(registry.Blocks))
	for _, block := range registry.Blocks {
		fmt.Printf("  %s: %d root pins, %d pin-graph pins, %d primitive classes, hosted by %d tile type(s)\n",
			block.Name,
			block.RootNumPins(),
			block.TotalPbPins(),
			len(block.PrimitiveClasses),
			len(block.EquivalentTiles))
	}
	return nil
}
