package cmd

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/pinaddr"
	"github.com/spf13/cobra"
)

var (
	classTileName string
	classNum      int
	classFlat     bool
)

var classCmd = &cobra.Command{
	Use:   "class <arch-file>",
	Short: "Translate a physical class number",
	Long: `Translate a tile-global physical class number back to the owning sub
tile, capacity instance, logical block, and per-block class index. Flat
class numbers address the primitive class space; with --flat=false the
number indexes the tile's root-level classes and its member pins are
rendered by name.

Examples:
  archq class arch.desc --tile CLB --num 3
  archq class arch.desc --tile CLB --num 0 --flat=false`,
	Args: cobra.ExactArgs(1),
	RunE: runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)

	classCmd.Flags().StringVarP(&classTileName, "tile", "t", "", "physical tile type name")
	classCmd.Flags().IntVarP(&classNum, "num", "n", 0, "physical class number")
	classCmd.Flags().BoolVar(&classFlat, "flat", true, "address the flat (primitive) class space")

	classCmd.MarkFlagRequired("tile")
	classCmd.MarkFlagRequired("num")
}

func runClass(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(args)
	if err != nil {
		return err
	}
	tile, err := lookupTile(registry, classTileName)
	if err != nil {
		return err
	}

	classType, err := pinaddr.ClassTypeFromClassPhysicalNum(tile, classNum, classFlat)
	if err != nil {
		return fmt.Errorf("failed to resolve class: %w", err)
	}
	numPins, err := pinaddr.ClassNumPinsFromClassPhysicalNum(tile, classNum, classFlat)
	if err != nil {
		return fmt.Errorf("failed to resolve class: %w", err)
	}

	fmt.Printf("%s class %d: %s, %d pin(s)\n", tile.Name, classNum, classType, numPins)

	if !classFlat {
		names, err := pinaddr.ClassPinNames(tile, classNum)
		if err != nil {
			return fmt.Errorf("failed to name class pins: %w", err)
		}
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	st, err := pinaddr.SubTileFromClassPhysicalNum(tile, classNum)
	if err != nil {
		return fmt.Errorf("failed to resolve owning sub tile: %w", err)
	}
	slot, err := pinaddr.SubTileCapFromClassPhysicalNum(tile, classNum)
	if err != nil {
		return fmt.Errorf("failed to resolve owning capacity instance: %w", err)
	}
	block, err := pinaddr.LogicalBlockFromClassPhysicalNum(tile, classNum)
	if err != nil {
		return fmt.Errorf("failed to resolve owning block: %w", err)
	}
	logicalNum, err := pinaddr.ClassLogicalNumFromClassPhysicalNum(tile, classNum)
	if err != nil {
		return fmt.Errorf("failed to resolve logical class number: %w", err)
	}

	fmt.Printf("  sub_tile:          %s (index %d)\n", st.Name, st.Index)
	fmt.Printf("  capacity instance: %d\n", slot)
	fmt.Printf("  logical block:     %s\n", block.Name)
	fmt.Printf("  logical class:     %d\n", logicalNum)
	return nil
}
