package pinaddr

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// PinInst addresses one root-level physical pin by its position inside the
// tile hierarchy: the owning sub tile, the capacity instance within it, and
// the port position within that instance. Port and PinInPort are arch.Open
// when no declared port covers the pin; naming code renders such pins as
// <UNKNOWN> instead of failing, since naming is a diagnostic path.
type PinInst struct {
	SubTile          int
	CapacityInstance int
	Port             int
	PinInPort        int
}

// locateInst resolves a tile-global root pin index to its pin-in-instance
// index, capacity instance number, and owning sub tile index.
func locateInst(tile *arch.PhysicalTileType, pinIndex int) (pinInInst, instNum, subTileIndex int, err error) {
	if pinIndex < 0 || pinIndex >= tile.NumPins {
		return 0, 0, 0, fmt.Errorf("%w: pin index %d out of range for tile %s with %d pins",
			ErrInvariant, pinIndex, tile.Name, tile.NumPins)
	}

	totalPins := 0
	pinOffset := 0
	for _, st := range tile.SubTiles {
		totalPins += st.NumPhyPins
		if pinIndex < totalPins {
			perInst := st.InstNumPins()
			return (pinIndex - pinOffset) % perInst, (pinIndex - pinOffset) / perInst, st.Index, nil
		}
		pinOffset += st.NumPhyPins
	}

	return 0, 0, 0, fmt.Errorf("%w: could not infer the pin instance for %s (pin index %d)",
		ErrInconsistent, tile.Name, pinIndex)
}

// PinInstOf resolves a tile-global root pin index into its PinInst address.
// The sub tile and capacity instance always resolve for a valid index; the
// port fields are arch.Open when the pin falls outside every declared port.
func PinInstOf(tile *arch.PhysicalTileType, pinIndex int) (PinInst, error) {
	pinInInst, instNum, subTileIndex, err := locateInst(tile, pinIndex)
	if err != nil {
		return PinInst{}, err
	}

	inst := PinInst{
		SubTile:          subTileIndex,
		CapacityInstance: instNum,
		Port:             arch.Open,
		PinInPort:        arch.Open,
	}
	for _, port := range tile.SubTiles[subTileIndex].Ports {
		if pinInInst >= port.AbsoluteFirstPin && pinInInst < port.AbsoluteFirstPin+port.NumPins {
			inst.Port = port.Index
			inst.PinInPort = pinInInst - port.AbsoluteFirstPin
			break
		}
	}
	return inst, nil
}

// CapacityLocationFromPin re-addresses a tile-global root pin as a
// (capacity location, relative pin) pair. The capacity location is absolute
// within the owning sub tile's [low, high] range.
func CapacityLocationFromPin(tile *arch.PhysicalTileType, pin int) (capacityLocation, relativePin int, err error) {
	pinsToRemove := 0
	for _, st := range tile.SubTiles {
		subTilePin := pin - pinsToRemove
		if subTilePin >= 0 && subTilePin < st.NumPhyPins {
			perInst := st.InstNumPins()
			return subTilePin/perInst + st.Capacity.Low, subTilePin % perInst, nil
		}
		pinsToRemove += st.NumPhyPins
	}

	return 0, 0, fmt.Errorf("%w: could not find the sub tile that contains pin %d in tile %s",
		ErrInconsistent, pin, tile.Name)
}

// PinFromCapacityLocation is the exact inverse of CapacityLocationFromPin:
// it maps a (relative pin, capacity location) pair back to the tile-global
// root pin number. The capacity location selects the owning sub tile, since
// each sub tile covers a distinct [low, high] range.
func PinFromCapacityLocation(tile *arch.PhysicalTileType, relativePin, capacityLocation int) (int, error) {
	pinsToAdd := 0
	for _, st := range tile.SubTiles {
		if st.Capacity.Contains(capacityLocation) {
			relCapacity := capacityLocation - st.Capacity.Low
			return pinsToAdd + st.InstNumPins()*relCapacity + relativePin, nil
		}
		pinsToAdd += st.NumPhyPins
	}

	return 0, fmt.Errorf("%w: could not find the sub tile that contains relative pin %d at capacity location %d in tile %s",
		ErrInconsistent, relativePin, capacityLocation, tile.Name)
}
