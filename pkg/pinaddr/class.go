package pinaddr

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// Physical class numbers exist only in the flat address space: root-level
// tiles expose their pin classes directly on the tile descriptor, so the
// translation below is needed exclusively for the primitive (flat)
// hierarchy. Numbering follows the identical linearization order as flat pin
// numbering, starting from zero.

// PrimitiveClassPhysicalNum returns the tile-global physical class number of
// one of a block's primitive classes, for the block occupying the given
// (sub tile, relative capacity) slot.
func PrimitiveClassPhysicalNum(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap, logicalClassNum int) (int, error) {
	offset, found := scanSites(tile,
		func(u siteRef) int { return len(u.Site.PrimitiveClasses) },
		func(u siteRef, _ int) bool {
			return u.SubTile == st && u.Slot == relativeCap && u.Site == block
		})
	if !found {
		return 0, fmt.Errorf("%w: block %s does not occupy capacity instance %d of sub tile %s in tile %s",
			ErrInconsistent, block.Name, relativeCap, st.Name, tile.Name)
	}
	return offset + logicalClassNum, nil
}

// SubTileFromClassPhysicalNum returns the sub tile owning a physical class
// number. The scan is deliberately independent of the other class inverses:
// each one re-walks the linearization on its own, trading repeated work for
// scans that are trivially checkable against the forward direction.
func SubTileFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int) (*arch.SubTile, error) {
	seen := 0
	for _, st := range tile.SubTiles {
		span := instClasses(st) * st.Capacity.Total()
		if physicalClassNum >= seen && physicalClassNum < seen+span {
			return st, nil
		}
		seen += span
	}
	return nil, fmt.Errorf("%w: no sub tile of %s owns class physical number %d",
		ErrInconsistent, tile.Name, physicalClassNum)
}

// SubTileCapFromClassPhysicalNum returns the capacity instance owning a
// physical class number, relative to the sub tile's low bound.
func SubTileCapFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int) (int, error) {
	seen := 0
	for _, st := range tile.SubTiles {
		perInst := instClasses(st)
		for slot := 0; slot < st.Capacity.Total(); slot++ {
			if physicalClassNum >= seen && physicalClassNum < seen+perInst {
				return slot, nil
			}
			seen += perInst
		}
	}
	return 0, fmt.Errorf("%w: no capacity instance of %s owns class physical number %d",
		ErrInconsistent, tile.Name, physicalClassNum)
}

// LogicalBlockFromClassPhysicalNum returns the logical block whose primitive
// class carries the given physical class number.
func LogicalBlockFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int) (*arch.LogicalBlockType, error) {
	var owner *arch.LogicalBlockType
	_, found := scanSites(tile,
		func(u siteRef) int { return len(u.Site.PrimitiveClasses) },
		func(u siteRef, offset int) bool {
			if physicalClassNum >= offset && physicalClassNum < offset+len(u.Site.PrimitiveClasses) {
				owner = u.Site
				return true
			}
			return false
		})
	if !found {
		return nil, fmt.Errorf("%w: no logical block of %s owns class physical number %d",
			ErrInconsistent, tile.Name, physicalClassNum)
	}
	return owner, nil
}

// ClassLogicalNumFromClassPhysicalNum translates a physical class number
// back to the owning block's primitive class index, by subtracting the
// starting class number of the owning unit.
func ClassLogicalNumFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int) (int, error) {
	st, err := SubTileFromClassPhysicalNum(tile, physicalClassNum)
	if err != nil {
		return 0, err
	}
	relativeCap, err := SubTileCapFromClassPhysicalNum(tile, physicalClassNum)
	if err != nil {
		return 0, err
	}
	block, err := LogicalBlockFromClassPhysicalNum(tile, physicalClassNum)
	if err != nil {
		return 0, err
	}
	start, err := PrimitiveClassPhysicalNum(tile, st, block, relativeCap, 0)
	if err != nil {
		return 0, err
	}
	return physicalClassNum - start, nil
}

// ClassTypeFromClassPhysicalNum returns the electrical type of a class. With
// flat set, physicalClassNum addresses the flat primitive class space;
// otherwise it indexes the tile's root-level classes directly.
func ClassTypeFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int, flat bool) (arch.PinType, error) {
	class, err := classFromPhysicalNum(tile, physicalClassNum, flat)
	if err != nil {
		return 0, err
	}
	return class.Type, nil
}

// ClassNumPinsFromClassPhysicalNum returns the member pin count of a class,
// in the flat or the root-level class space.
func ClassNumPinsFromClassPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int, flat bool) (int, error) {
	class, err := classFromPhysicalNum(tile, physicalClassNum, flat)
	if err != nil {
		return 0, err
	}
	return class.NumPins(), nil
}

func classFromPhysicalNum(tile *arch.PhysicalTileType, physicalClassNum int, flat bool) (*arch.Class, error) {
	if flat {
		block, err := LogicalBlockFromClassPhysicalNum(tile, physicalClassNum)
		if err != nil {
			return nil, err
		}
		logicalNum, err := ClassLogicalNumFromClassPhysicalNum(tile, physicalClassNum)
		if err != nil {
			return nil, err
		}
		return &block.PrimitiveClasses[logicalNum], nil
	}

	if physicalClassNum < 0 || physicalClassNum >= len(tile.Classes) {
		return nil, fmt.Errorf("%w: class index %d out of range for tile %s with %d classes",
			ErrInvariant, physicalClassNum, tile.Name, len(tile.Classes))
	}
	return &tile.Classes[physicalClassNum], nil
}

// LogicalBlockPrimitiveClasses maps every primitive class of the block
// occupying the given slot to its physical class number.
func LogicalBlockPrimitiveClasses(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap int) (map[int]*arch.Class, error) {
	classes := make(map[int]*arch.Class, len(block.PrimitiveClasses))
	for classNum := range block.PrimitiveClasses {
		physicalNum, err := PrimitiveClassPhysicalNum(tile, st, block, relativeCap, classNum)
		if err != nil {
			return nil, err
		}
		classes[physicalNum] = &block.PrimitiveClasses[classNum]
	}
	return classes, nil
}

// SubTilePrimitiveClasses collects the primitive classes of every equivalent
// site of one capacity instance, keyed by physical class number.
func SubTilePrimitiveClasses(tile *arch.PhysicalTileType, st *arch.SubTile, relativeCap int) (map[int]*arch.Class, error) {
	classes := make(map[int]*arch.Class)
	for _, site := range st.EquivalentSites {
		siteClasses, err := LogicalBlockPrimitiveClasses(tile, st, site, relativeCap)
		if err != nil {
			return nil, err
		}
		for num, class := range siteClasses {
			classes[num] = class
		}
	}
	return classes, nil
}

// TilePrimitiveClasses collects every primitive class of the tile, keyed by
// physical class number.
func TilePrimitiveClasses(tile *arch.PhysicalTileType) (map[int]*arch.Class, error) {
	classes := make(map[int]*arch.Class)
	for _, st := range tile.SubTiles {
		for slot := 0; slot < st.Capacity.Total(); slot++ {
			subTileClasses, err := SubTilePrimitiveClasses(tile, st, slot)
			if err != nil {
				return nil, err
			}
			for num, class := range subTileClasses {
				classes[num] = class
			}
		}
	}
	return classes, nil
}

// PrimitiveBlockClasses maps the classes touched by one primitive pb-graph
// node's pins to their physical class numbers. The node must be a primitive
// of the given block.
func PrimitiveBlockClasses(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap int, node *arch.PbGraphNode) (map[int]*arch.Class, error) {
	if !node.IsPrimitive() {
		return nil, fmt.Errorf("%w: node %s of block %s is not a primitive", ErrInvariant, node.Name, block.Name)
	}

	classes := make(map[int]*arch.Class)
	seen := make(map[int]bool)
	for _, pin := range node.Pins() {
		classNum := block.PrimitivePinClass(pin)
		if classNum == arch.Open {
			return nil, fmt.Errorf("%w: pin %s.%s[%d] of block %s has no owning class",
				ErrInconsistent, node.Name, pin.Port.Name, pin.PinNumber, block.Name)
		}
		if seen[classNum] {
			continue
		}
		seen[classNum] = true
		physicalNum, err := PrimitiveClassPhysicalNum(tile, st, block, relativeCap, classNum)
		if err != nil {
			return nil, err
		}
		classes[physicalNum] = &block.PrimitiveClasses[classNum]
	}
	return classes, nil
}
