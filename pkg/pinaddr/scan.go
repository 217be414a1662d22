package pinaddr

import (
	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// siteRef identifies one (sub tile, capacity instance, equivalent site) unit
// of the canonical linearization.
type siteRef struct {
	SubTile *arch.SubTile
	Slot    int
	Site    *arch.LogicalBlockType
}

// scanSites walks the tile's units in canonical order - sub tiles in
// declaration order, capacity instances from 0 upward, equivalent sites in
// declaration order - accumulating size(unit) for every unit preceding the
// first one for which stop returns true. stop also receives the offset
// accumulated so far, which lets inverse translators stop inside the unit
// owning a given address. It returns the accumulated offset and whether any
// unit matched. Every translator that needs "the offset of X" goes through
// this one walk so that pin and class addressing can never disagree on
// ordering.
func scanSites(tile *arch.PhysicalTileType, size func(siteRef) int, stop func(siteRef, int) bool) (int, bool) {
	offset := 0
	for _, st := range tile.SubTiles {
		for slot := 0; slot < st.Capacity.Total(); slot++ {
			for _, site := range st.EquivalentSites {
				unit := siteRef{SubTile: st, Slot: slot, Site: site}
				if stop(unit, offset) {
					return offset, true
				}
				offset += size(unit)
			}
		}
	}
	return offset, false
}

// flatInstPins returns the flat pin count of one capacity instance: the sum
// of the full pin-graph pin counts of every equivalent site.
func flatInstPins(st *arch.SubTile) int {
	total := 0
	for _, site := range st.EquivalentSites {
		total += site.TotalPbPins()
	}
	return total
}

// instClasses returns the primitive class count of one capacity instance.
func instClasses(st *arch.SubTile) int {
	total := 0
	for _, site := range st.EquivalentSites {
		total += len(site.PrimitiveClasses)
	}
	return total
}
