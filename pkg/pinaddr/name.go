package pinaddr

import (
	"fmt"
	"sort"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// PinName renders the canonical human-readable name of a root-level
// physical pin: Tile[instance].port[index], with the instance omitted for
// sub tiles of capacity one. A pin outside every declared port renders as
// <UNKNOWN>; naming is a diagnostic path and must not abort on it.
func PinName(tile *arch.PhysicalTileType, pinIndex int) (string, error) {
	inst, err := PinInstOf(tile, pinIndex)
	if err != nil {
		return "", err
	}
	if inst.Port == arch.Open {
		return "<UNKNOWN>", nil
	}

	st := tile.SubTiles[inst.SubTile]
	name := tile.Name
	if st.Capacity.Total() > 1 {
		name += fmt.Sprintf("[%d]", inst.CapacityInstance)
	}
	return fmt.Sprintf("%s.%s[%d]", name, st.Ports[inst.Port].Name, inst.PinInPort), nil
}

// ClassPinNames renders the member pins of a root-level class as compact
// Tile[instance].port[lo:hi] ranges, one per (sub tile, instance, port)
// run. Class construction guarantees that members are contiguous within a
// port; a gap means the registry is corrupt and fails loudly.
func ClassPinNames(tile *arch.PhysicalTileType, classIndex int) ([]string, error) {
	if classIndex < 0 || classIndex >= len(tile.Classes) {
		return nil, fmt.Errorf("%w: class index %d out of range for tile %s with %d classes",
			ErrInvariant, classIndex, tile.Name, len(tile.Classes))
	}

	class := &tile.Classes[classIndex]
	infos := make([]PinInst, 0, len(class.Pins))
	for _, pin := range class.Pins {
		inst, err := PinInstOf(tile, pin)
		if err != nil {
			return nil, err
		}
		if inst.Port == arch.Open {
			return nil, fmt.Errorf("%w: member pin %d of class %d on tile %s lies outside every port",
				ErrInvariant, pin, classIndex, tile.Name)
		}
		infos = append(infos, inst)
	}

	sort.Slice(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if a.SubTile != b.SubTile {
			return a.SubTile < b.SubTile
		}
		if a.CapacityInstance != b.CapacityInstance {
			return a.CapacityInstance < b.CapacityInstance
		}
		if a.Port != b.Port {
			return a.Port < b.Port
		}
		return a.PinInPort < b.PinInPort
	})

	sameRun := func(a, b PinInst) bool {
		return a.SubTile == b.SubTile && a.CapacityInstance == b.CapacityInstance && a.Port == b.Port
	}

	var names []string
	for i := 0; i < len(infos); {
		j := i + 1
		for j < len(infos) && sameRun(infos[i], infos[j]) {
			if infos[j].PinInPort != infos[j-1].PinInPort+1 {
				return nil, fmt.Errorf("%w: pins of class %d on tile %s are not contiguous within port %s",
					ErrInvariant, classIndex, tile.Name, tile.SubTiles[infos[i].SubTile].Ports[infos[i].Port].Name)
			}
			j++
		}

		st := tile.SubTiles[infos[i].SubTile]
		port := st.Ports[infos[i].Port]
		lo, hi := infos[i].PinInPort, infos[j-1].PinInPort
		if lo == hi {
			names = append(names, fmt.Sprintf("%s[%d].%s[%d]",
				tile.Name, infos[i].CapacityInstance, port.Name, lo))
		} else {
			names = append(names, fmt.Sprintf("%s[%d].%s[%d:%d]",
				tile.Name, infos[i].CapacityInstance, port.Name, lo, hi))
		}
		i = j
	}
	return names, nil
}
