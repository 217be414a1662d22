package cmd

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
	"github.com/amin1377/vtr-verilog-to-routing/pkg/pinaddr"
	"github.com/spf13/cobra"
)

var (
	pinTileName string
	pinIndex    int
)

var pinCmd = &cobra.Command{
	Use:   "pin <arch-file>",
	Short: "Resolve a physical pin number",
	Long: `Resolve a tile-global physical pin number into every coordinate system it
participates in: the owning sub tile, capacity instance, port, capacity
location, and its canonical name.

Examples:
  # Pin 2 of CLOCK_TILE
  archq pin arch.desc --tile CLOCK_TILE --index 2`,
	Args: cobra.ExactArgs(1),
	RunE: runPin,
}

func init() {
	rootCmd.AddCommand(pinCmd)

	pinCmd.Flags().StringVarP(&pinTileName, "tile", "t", "", "physical tile type name")
	pinCmd.Flags().IntVarP(&pinIndex, "index", "i", 0, "tile-global physical pin index")

	pinCmd.MarkFlagRequired("tile")
	pinCmd.MarkFlagRequired("index")
}

func runPin(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(args)
	if err != nil {
		return err
	}
	tile, err := lookupTile(registry, pinTileName)
	if err != nil {
		return err
	}

	inst, err := pinaddr.PinInstOf(tile, pinIndex)
	if err != nil {
		return fmt.Errorf("failed to resolve pin: %w", err)
	}
	name, err := pinaddr.PinName(tile, pinIndex)
	if err != nil {
		return fmt.Errorf("failed to name pin: %w", err)
	}
	capacityLocation, relativePin, err := pinaddr.CapacityLocationFromPin(tile, pinIndex)
	if err != nil {
		return fmt.Errorf("failed to resolve capacity location: %w", err)
	}

	st := tile.SubTiles[inst.SubTile]
	fmt.Printf("%s pin %d: %s\n", tile.Name, pinIndex, name)
	fmt.Printf("  sub_tile:          %s (index %d)\n", st.Name, inst.SubTile)
	fmt.Printf("  capacity instance: %d\n", inst.CapacityInstance)
	if inst.Port != arch.Open {
		fmt.Printf("  port:              %s[%d]\n", st.Ports[inst.Port].Name, inst.PinInPort)
	} else {
		fmt.Printf("  port:              <UNKNOWN>\n")
	}
	fmt.Printf("  capacity location: %d, relative pin %d\n", capacityLocation, relativePin)
	if verbose {
		fmt.Printf("  output pin:        %v\n", pinaddr.IsOutputPin(tile, pinIndex))
		fmt.Printf("  root class:        %d\n", tile.PinClass[pinIndex])
	}
	return nil
}
