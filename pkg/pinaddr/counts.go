package pinaddr

import (
	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// TotalSubTilePins returns the flat pin count of a sub tile: the full
// pin-graph pin count of every equivalent site, times the capacity.
func TotalSubTilePins(st *arch.SubTile) int {
	return flatInstPins(st) * st.Capacity.Total()
}

// TotalTilePins returns the flat pin count of the whole tile, the size of
// the internal address space appended after the root-level pins.
func TotalTilePins(tile *arch.PhysicalTileType) int {
	total := 0
	for _, st := range tile.SubTiles {
		total += TotalSubTilePins(st)
	}
	return total
}

// TileMaxPtc returns the number of per-location ptc values a
// routing-resource-graph builder must reserve for the tile: the root pin
// count alone, or with the flat space appended.
func TileMaxPtc(tile *arch.PhysicalTileType, flat bool) int {
	if flat {
		return tile.NumPins + TotalTilePins(tile)
	}
	return tile.NumPins
}

// TileNumPrimitiveClasses returns the size of the tile's flat class space.
func TileNumPrimitiveClasses(tile *arch.PhysicalTileType) int {
	total := 0
	for _, st := range tile.SubTiles {
		total += instClasses(st) * st.Capacity.Total()
	}
	return total
}

// MaxNumPins returns the largest root pin count among the physical tile
// types that can host the block.
func MaxNumPins(block *arch.LogicalBlockType) int {
	maxPins := 0
	for _, tile := range block.EquivalentTiles {
		if tile.NumPins > maxPins {
			maxPins = tile.NumPins
		}
	}
	return maxPins
}
