package pinaddr

import (
	"fmt"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// PickPhysicalType returns a representative physical tile type for the
// block: the first equivalent tile in declaration order. Callers that need
// the actually placed tile must not use this.
func PickPhysicalType(block *arch.LogicalBlockType) (*arch.PhysicalTileType, error) {
	if len(block.EquivalentTiles) == 0 {
		return nil, fmt.Errorf("%w: logical block type %s has no equivalent tiles", ErrInconsistent, block.Name)
	}
	return block.EquivalentTiles[0], nil
}

// PickLogicalType returns a representative logical block type for the tile:
// the first equivalent site of the first sub tile.
func PickLogicalType(tile *arch.PhysicalTileType) (*arch.LogicalBlockType, error) {
	if len(tile.SubTiles) == 0 || len(tile.SubTiles[0].EquivalentSites) == 0 {
		return nil, fmt.Errorf("%w: physical tile type %s has no equivalent sites", ErrInconsistent, tile.Name)
	}
	return tile.SubTiles[0].EquivalentSites[0], nil
}

// IsTileCompatible reports whether the block may occupy any sub tile of the
// given physical tile type.
func IsTileCompatible(tile *arch.PhysicalTileType, block *arch.LogicalBlockType) bool {
	for _, t := range block.EquivalentTiles {
		if t == tile {
			return true
		}
	}
	return false
}

// IsSubTileCompatible reports whether the block may occupy the tile at the
// given absolute capacity location.
func IsSubTileCompatible(tile *arch.PhysicalTileType, block *arch.LogicalBlockType, capacityLocation int) bool {
	capacityCompatible := false
	for _, st := range tile.SubTiles {
		if !st.Capacity.Contains(capacityLocation) {
			continue
		}
		for _, site := range st.EquivalentSites {
			if site == block {
				capacityCompatible = true
				break
			}
		}
		if capacityCompatible {
			break
		}
	}
	return capacityCompatible && IsTileCompatible(tile, block)
}

// FindPin resolves a port name and pin-in-port index to the tile-global
// physical pin number. Ports are scanned across sub tiles in declaration
// order and the first name match wins; arch.Open is returned when no port
// carries the name. Duplicate names cannot occur in a built registry, the
// builder rejects them at load time.
func FindPin(tile *arch.PhysicalTileType, portName string, pinInPort int) (int, error) {
	portBasePin := 0
	numPins := arch.Open
	pinOffset := 0

	portFound := false
	for _, st := range tile.SubTiles {
		portBasePin = 0
		for _, port := range st.Ports {
			if port.Name == portName {
				portFound = true
				numPins = port.NumPins
				break
			}
			portBasePin += port.NumPins
		}
		if portFound {
			break
		}
		pinOffset += st.NumPhyPins
	}

	if numPins == arch.Open {
		return arch.Open, nil
	}
	if pinInPort < 0 || pinInPort >= numPins {
		return 0, fmt.Errorf("%w: pin %d out of range for the %d-pin port %s on tile %s",
			ErrInvariant, pinInPort, numPins, portName, tile.Name)
	}
	return portBasePin + pinInPort + pinOffset, nil
}

// FindPinClass returns the root-level class owning the pin named by port and
// pin-in-port index, checking that the class has the expected electrical
// type. arch.Open is returned when the port does not exist.
func FindPinClass(tile *arch.PhysicalTileType, portName string, pinInPort int, pinType arch.PinType) (int, error) {
	pin, err := FindPin(tile, portName, pinInPort)
	if err != nil || pin == arch.Open {
		return arch.Open, err
	}

	class := tile.PinClass[pin]
	if class != arch.Open && tile.Classes[class].Type != pinType {
		return 0, fmt.Errorf("%w: class %d of tile %s is a %s, expected a %s",
			ErrInvariant, class, tile.Name, tile.Classes[class].Type, pinType)
	}
	return class, nil
}

// IsOutputPin reports whether a root-level physical pin drives a signal.
// Flat (internal) pin numbers are not root-level pins and report false.
func IsOutputPin(tile *arch.PhysicalTileType, pin int) bool {
	if pin < 0 || pin >= tile.NumPins {
		return false
	}
	class := tile.PinClass[pin]
	if class == arch.Open {
		return false
	}
	return tile.Classes[class].Type == arch.PinDriver
}

// PortByName returns the sub tile's port with the given name. Matching is
// exact and case-sensitive.
func PortByName(st *arch.SubTile, name string) (*arch.Port, bool) {
	for i := range st.Ports {
		if st.Ports[i].Name == name {
			return &st.Ports[i], true
		}
	}
	return nil, false
}

// LogicalPortByName returns the block's root port with the given name.
func LogicalPortByName(block *arch.LogicalBlockType, name string) (*arch.PbPort, bool) {
	for _, port := range block.Root.Ports {
		if port.Name == name {
			return port, true
		}
	}
	return nil, false
}

// PortByPin returns the sub tile port covering an instance-relative pin.
func PortByPin(st *arch.SubTile, pin int) (*arch.Port, bool) {
	for i := range st.Ports {
		port := &st.Ports[i]
		if pin >= port.AbsoluteFirstPin && pin < port.AbsoluteFirstPin+port.NumPins {
			return port, true
		}
	}
	return nil, false
}

// LogicalPortByPin returns the block's root port covering an absolute root
// pin index.
func LogicalPortByPin(block *arch.LogicalBlockType, pin int) (*arch.PbPort, bool) {
	for _, port := range block.Root.Ports {
		if pin >= port.AbsoluteFirstPin && pin < port.AbsoluteFirstPin+port.NumPins {
			return port, true
		}
	}
	return nil, false
}

// PortByLogicalPinNum returns the port owning a logical (pin-graph) pin
// number, root or primitive.
func PortByLogicalPinNum(block *arch.LogicalBlockType, logicalPin int) (*arch.PbPort, error) {
	pin, ok := block.PbPinByNum(logicalPin)
	if !ok {
		return nil, fmt.Errorf("%w: block %s has no pin-graph pin numbered %d",
			ErrInvariant, block.Name, logicalPin)
	}
	return pin.Port, nil
}
