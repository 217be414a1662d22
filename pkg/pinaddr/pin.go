package pinaddr

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// LogicalBlockSubTileIndex returns the index of the first sub tile of the
// tile that accepts the given logical block as an equivalent site.
func LogicalBlockSubTileIndex(tile *arch.PhysicalTileType, block *arch.LogicalBlockType) (int, error) {
	for _, st := range tile.SubTiles {
		for _, site := range st.EquivalentSites {
			if site == block {
				return st.Index, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: found no instances of logical block type %s within physical tile type %s",
		ErrInconsistent, block.Name, tile.Name)
}

// LogicalBlockSubTileIndexAt is LogicalBlockSubTileIndex restricted to the
// sub tile whose capacity range covers the given absolute capacity location.
func LogicalBlockSubTileIndexAt(tile *arch.PhysicalTileType, block *arch.LogicalBlockType, capacityLocation int) (int, error) {
	for _, st := range tile.SubTiles {
		if !st.Capacity.Contains(capacityLocation) {
			continue
		}
		for _, site := range st.EquivalentSites {
			if site == block {
				return st.Index, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: found no instances of logical block type %s within physical tile type %s at capacity location %d",
		ErrInconsistent, block.Name, tile.Name, capacityLocation)
}

// SubTilePhysicalPin maps a logical block's root pin number to the
// instance-relative pin of the given sub tile, through the direct pin map.
// A missing correspondence is fatal and names the pin, tile, and block.
func SubTilePhysicalPin(tile *arch.PhysicalTileType, subTileIndex int, block *arch.LogicalBlockType, logicalPin int) (int, error) {
	directMap, ok := tile.DirectPinMap(block.Index, subTileIndex)
	if !ok {
		return 0, fmt.Errorf("%w: no direct pin map between tile %s sub tile %d and block %s",
			ErrInconsistent, tile.Name, subTileIndex, block.Name)
	}
	pin, ok := directMap.SubTilePin(logicalPin)
	if !ok {
		return 0, fmt.Errorf("%w: could not find the physical tile pin corresponding to logical block pin %d; tile %s, block %s",
			ErrInconsistent, logicalPin, tile.Name, block.Name)
	}
	return pin, nil
}

// PhysicalPin maps a logical block root pin to the tile-global physical pin
// of the block's first hosting sub tile, at capacity instance 0.
func PhysicalPin(tile *arch.PhysicalTileType, block *arch.LogicalBlockType, logicalPin int) (int, error) {
	subTileIndex, err := LogicalBlockSubTileIndex(tile, block)
	if err != nil {
		return 0, err
	}
	subTilePin, err := SubTilePhysicalPin(tile, subTileIndex, block, logicalPin)
	if err != nil {
		return 0, err
	}
	return tileGlobalPin(tile.SubTiles[subTileIndex], subTilePin)
}

// PhysicalPinAtLocation maps a logical block root pin to the tile-global
// physical pin at an explicit capacity location. The per-instance pin count
// of the sub tile, not of the block, scales the capacity offset: equivalent
// sites may have differing pin counts, but every instance of one sub tile
// holds exactly NumPhyPins / capacity pins.
func PhysicalPinAtLocation(tile *arch.PhysicalTileType, block *arch.LogicalBlockType, capacityLocation, logicalPin int) (int, error) {
	subTileIndex, err := LogicalBlockSubTileIndexAt(tile, block, capacityLocation)
	if err != nil {
		return 0, err
	}
	st := tile.SubTiles[subTileIndex]

	subTilePin, err := SubTilePhysicalPin(tile, subTileIndex, block, logicalPin)
	if err != nil {
		return 0, err
	}

	relativeCapacity := capacityLocation - st.Capacity.Low
	return tileGlobalPin(st, subTilePin+relativeCapacity*st.InstNumPins())
}

// rootPbPinPhysicalNum resolves a root pb-graph pin to its tile-global
// physical number for one explicit (sub tile, relative capacity) slot. The
// sub tile is taken as an input rather than inferred from the block, so a
// block hosted by several sub tiles resolves against the intended one.
func rootPbPinPhysicalNum(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap, logicalPin int) (int, error) {
	subTilePin, err := SubTilePhysicalPin(tile, st.Index, block, logicalPin)
	if err != nil {
		return 0, err
	}
	return tileGlobalPin(st, subTilePin+relativeCap*st.InstNumPins())
}

func tileGlobalPin(st *arch.SubTile, subTilePin int) (int, error) {
	if subTilePin < 0 || subTilePin >= len(st.SubTileToTilePin) {
		return 0, fmt.Errorf("%w: sub tile pin %d outside the %d-entry pin table of sub tile %s",
			ErrInvariant, subTilePin, len(st.SubTileToTilePin), st.Name)
	}
	return st.SubTileToTilePin[subTilePin], nil
}

// subBlockPinOffset computes the flat numbering offset of one (sub tile,
// capacity instance, block) unit: the tile's root pin count plus the
// cumulative pin-graph pin counts of every preceding unit. It is recomputed
// on each call by re-walking the linearization; nothing is cached.
func subBlockPinOffset(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap int) (int, error) {
	offset, found := scanSites(tile,
		func(u siteRef) int { return u.Site.TotalPbPins() },
		func(u siteRef, _ int) bool {
			return u.SubTile == st && u.Slot == relativeCap && u.Site == block
		})
	if !found {
		return 0, fmt.Errorf("%w: block %s does not occupy capacity instance %d of sub tile %s in tile %s",
			ErrInconsistent, block.Name, relativeCap, st.Name, tile.Name)
	}
	return tile.NumPins + offset, nil
}

// PbPinPhysicalNum returns the tile-global physical number of any pb-graph
// pin of the block occupying the given (sub tile, relative capacity) slot.
// Root pins go through the direct pin map and land below tile.NumPins;
// internal pins are flat-numbered at tile.NumPins and beyond, keeping the
// two spaces disjoint.
func PbPinPhysicalNum(tile *arch.PhysicalTileType, st *arch.SubTile, block *arch.LogicalBlockType, relativeCap int, pin *arch.PbGraphPin) (int, error) {
	if pin.IsRootBlockPin() {
		return rootPbPinPhysicalNum(tile, st, block, relativeCap, pin.Port.AbsoluteFirstPin+pin.PinNumber)
	}

	logicalPin, ok := block.PbPinNum(pin)
	if !ok {
		return 0, fmt.Errorf("%w: pin %s.%s[%d] does not belong to block %s",
			ErrInvariant, pin.Node.Name, pin.Port.Name, pin.PinNumber, block.Name)
	}
	offset, err := subBlockPinOffset(tile, st, block, relativeCap)
	if err != nil {
		return 0, err
	}
	return offset + logicalPin, nil
}

// SubTileFromPinPhysicalNum returns the sub tile owning a physical pin
// number, in either the root-level or the flat address space.
func SubTileFromPinPhysicalNum(tile *arch.PhysicalTileType, physicalNum int) (*arch.SubTile, error) {
	if physicalNum < 0 {
		return nil, fmt.Errorf("%w: negative pin physical number %d on tile %s", ErrInvariant, physicalNum, tile.Name)
	}

	if physicalNum < tile.NumPins {
		seen := 0
		for _, st := range tile.SubTiles {
			if physicalNum < seen+st.NumPhyPins {
				return st, nil
			}
			seen += st.NumPhyPins
		}
	} else {
		seen := tile.NumPins
		for _, st := range tile.SubTiles {
			span := flatInstPins(st) * st.Capacity.Total()
			if physicalNum < seen+span {
				return st, nil
			}
			seen += span
		}
	}

	return nil, fmt.Errorf("%w: no sub tile of %s owns pin physical number %d",
		ErrInconsistent, tile.Name, physicalNum)
}

// SubTileCapFromPinPhysicalNum returns the capacity instance owning a
// physical pin number, relative to the sub tile's low bound.
func SubTileCapFromPinPhysicalNum(tile *arch.PhysicalTileType, physicalNum int) (int, error) {
	if physicalNum >= 0 && physicalNum < tile.NumPins {
		_, instNum, _, err := locateInst(tile, physicalNum)
		return instNum, err
	}

	st, err := SubTileFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return 0, err
	}
	seen := tile.NumPins
	for _, prev := range tile.SubTiles {
		if prev == st {
			break
		}
		seen += flatInstPins(prev) * prev.Capacity.Total()
	}
	perInst := flatInstPins(st)
	for slot := 0; slot < st.Capacity.Total(); slot++ {
		if physicalNum < seen+perInst {
			return slot, nil
		}
		seen += perInst
	}

	return 0, fmt.Errorf("%w: no capacity instance of %s owns pin physical number %d",
		ErrInconsistent, tile.Name, physicalNum)
}

// LogicalBlockFromPinPhysicalNum returns the logical block owning a physical
// pin number. Root-level pins are shared by every equivalent site of the
// owning sub tile, so the representative (first declared) site is returned
// for them; flat pins resolve to the exact site that numbered them.
func LogicalBlockFromPinPhysicalNum(tile *arch.PhysicalTileType, physicalNum int) (*arch.LogicalBlockType, error) {
	st, err := SubTileFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return nil, err
	}
	if physicalNum < tile.NumPins {
		return st.EquivalentSites[0], nil
	}

	var owner *arch.LogicalBlockType
	_, found := scanSites(tile,
		func(u siteRef) int { return u.Site.TotalPbPins() },
		func(u siteRef, offset int) bool {
			if physicalNum < tile.NumPins+offset+u.Site.TotalPbPins() {
				owner = u.Site
				return true
			}
			return false
		})
	if !found {
		return nil, fmt.Errorf("%w: no logical block of %s owns pin physical number %d",
			ErrInconsistent, tile.Name, physicalNum)
	}
	return owner, nil
}

// PinLogicalNumFromPinPhysicalNum translates a physical pin number back to
// the owning block's logical (pin-graph) pin number. This is the inverse of
// PbPinPhysicalNum for the block returned by LogicalBlockFromPinPhysicalNum.
func PinLogicalNumFromPinPhysicalNum(tile *arch.PhysicalTileType, physicalNum int) (int, error) {
	st, err := SubTileFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return 0, err
	}
	relativeCap, err := SubTileCapFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return 0, err
	}
	block, err := LogicalBlockFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return 0, err
	}

	if physicalNum >= tile.NumPins {
		offset, err := subBlockPinOffset(tile, st, block, relativeCap)
		if err != nil {
			return 0, err
		}
		return physicalNum - offset, nil
	}

	subTilePin := arch.Open
	for i, global := range st.SubTileToTilePin {
		if global == physicalNum {
			subTilePin = i
			break
		}
	}
	if subTilePin == arch.Open {
		return 0, fmt.Errorf("%w: tile pin %d missing from the pin table of sub tile %s",
			ErrInvariant, physicalNum, st.Name)
	}
	subTilePin -= relativeCap * st.InstNumPins()

	directMap, ok := tile.DirectPinMap(block.Index, st.Index)
	if !ok {
		return 0, fmt.Errorf("%w: no direct pin map between tile %s sub tile %d and block %s",
			ErrInconsistent, tile.Name, st.Index, block.Name)
	}
	logicalPin, ok := directMap.LogicalPin(subTilePin)
	if !ok {
		return 0, fmt.Errorf("%w: could not find the logical block pin corresponding to sub tile pin %d; tile %s, block %s",
			ErrInconsistent, subTilePin, tile.Name, block.Name)
	}
	return logicalPin, nil
}

// PbPinFromPinPhysicalNum resolves a physical pin number all the way back to
// the pb-graph pin of the owning logical block.
func PbPinFromPinPhysicalNum(tile *arch.PhysicalTileType, physicalNum int) (*arch.PbGraphPin, error) {
	block, err := LogicalBlockFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return nil, err
	}
	logicalPin, err := PinLogicalNumFromPinPhysicalNum(tile, physicalNum)
	if err != nil {
		return nil, err
	}
	pin, ok := block.PbPinByNum(logicalPin)
	if !ok {
		return nil, fmt.Errorf("%w: block %s has no pin-graph pin numbered %d",
			ErrInconsistent, block.Name, logicalPin)
	}
	return pin, nil
}
