package cmd

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
	"github.com/amin1377/vtr-verilog-to-routing/pkg/pinaddr"
	"github.com/spf13/cobra"
)

var (
	findTileName  string
	findPortName  string
	findPinInPort int
)

var findCmd = &cobra.Command{
	Use:   "find <arch-file>",
	Short: "Look up a physical pin by port name",
	Long: `Resolve a port name and pin-in-port index to the tile-global physical pin
number, the reverse of the pin command's name rendering.

Examples:
  archq find arch.desc --tile CLB --port I --index 3`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVarP(&findTileName, "tile", "t", "", "physical tile type name")
	findCmd.Flags().StringVarP(&findPortName, "port", "p", "", "port name (case-sensitive)")
	findCmd.Flags().IntVarP(&findPinInPort, "index", "i", 0, "pin index within the port")

	findCmd.MarkFlagRequired("tile")
	findCmd.MarkFlagRequired("port")
}

func runFind(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(args)
	if err != nil {
		return err
	}
	tile, err := lookupTile(registry, findTileName)
	if err != nil {
		return err
	}

	pin, err := pinaddr.FindPin(tile, findPortName, findPinInPort)
	if err != nil {
		return fmt.Errorf("failed to find pin: %w", err)
	}
	if pin == arch.Open {
		fmt.Printf("Port '%s' not found on tile %s.\n\nAvailable ports:\n", findPortName, tile.Name)
		for _, st := range tile.SubTiles {
			for _, port := range st.Ports {
				fmt.Printf("  %s.%s[%d]\n", st.Name, port.Name, port.NumPins)
			}
		}
		return fmt.Errorf("port not found: %s", findPortName)
	}

	name, err := pinaddr.PinName(tile, pin)
	if err != nil {
		return fmt.Errorf("failed to name pin: %w", err)
	}
	fmt.Printf("%s.%s[%d] is physical pin %d (%s)\n", tile.Name, findPortName, findPinInPort, pin, name)
	return nil
}
