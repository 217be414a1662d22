package pinaddr

import (
	"errors"
	"testing"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

func TestPhysicalPin(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	beta := blockByName(t, registry, "BETA")

	// BETA's root pin 2 is out_a[0], local pin 2 of the first instance.
	pin, err := PhysicalPin(tile, beta, 2)
	if err != nil {
		t.Fatalf("PhysicalPin failed: %v", err)
	}
	if pin != 2 {
		t.Fatalf("expected physical pin 2, got %d", pin)
	}
}

func TestPhysicalPinAtLocation(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	alpha := blockByName(t, registry, "ALPHA")

	// Capacity location 3 is the second instance, so in_a[0] shifts by one
	// instance worth of pins.
	pin, err := PhysicalPinAtLocation(tile, alpha, 3, 0)
	if err != nil {
		t.Fatalf("PhysicalPinAtLocation failed: %v", err)
	}
	if pin != 3 {
		t.Fatalf("expected physical pin 3, got %d", pin)
	}

	if _, err := PhysicalPinAtLocation(tile, alpha, 0, 0); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected an inconsistency error outside the capacity range, got %v", err)
	}
}

func TestLogicalBlockSubTileIndex(t *testing.T) {
	registry := buildRegistry(t, comboArch)
	tile := tileByName(t, registry, "COMBO")
	alpha := blockByName(t, registry, "ALPHA")
	beta := blockByName(t, registry, "BETA")

	for _, tc := range []struct {
		block *arch.LogicalBlockType
		want  int
	}{
		{alpha, 0},
		{beta, 1},
	} {
		got, err := LogicalBlockSubTileIndex(tile, tc.block)
		if err != nil {
			t.Fatalf("%s: LogicalBlockSubTileIndex failed: %v", tc.block.Name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected sub tile %d, got %d", tc.block.Name, tc.want, got)
		}
	}
}

// unitOffset records the flat numbering start of one (slot, site) unit of
// the SLICE fixture's single sub tile.
type unitOffset struct {
	offset int
	block  string
	slot   int
}

// sliceUnits is the canonical linearization of SLICE: ALPHA holds 6
// pin-graph pins and BETA 9, the flat space starts after the 6 root pins.
var sliceUnits = []unitOffset{
	{6, "ALPHA", 0},
	{12, "BETA", 0},
	{21, "ALPHA", 1},
	{27, "BETA", 1},
}

func TestPbPinPhysicalNum(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	st := tile.SubTiles[0]

	for _, unit := range sliceUnits {
		block := blockByName(t, registry, unit.block)

		for logical := 0; logical < block.TotalPbPins(); logical++ {
			pbPin, ok := block.PbPinByNum(logical)
			if !ok {
				t.Fatalf("%s: pin-graph pin %d missing", block.Name, logical)
			}
			phys, err := PbPinPhysicalNum(tile, st, block, unit.slot, pbPin)
			if err != nil {
				t.Fatalf("%s slot %d pin %d: PbPinPhysicalNum failed: %v",
					block.Name, unit.slot, logical, err)
			}

			if pbPin.IsRootBlockPin() {
				// Root pins land in the shared root-level space, below the
				// tile's pin count.
				want := logical + unit.slot*st.InstNumPins()
				if phys != want {
					t.Fatalf("%s slot %d root pin %d: expected physical %d, got %d",
						block.Name, unit.slot, logical, want, phys)
				}
			} else {
				if phys != unit.offset+logical {
					t.Fatalf("%s slot %d pin %d: expected physical %d, got %d",
						block.Name, unit.slot, logical, unit.offset+logical, phys)
				}
			}
		}
	}
}

func TestPinPhysicalNumInverses(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	st := tile.SubTiles[0]

	// Every flat address must resolve to exactly the unit that numbered it.
	for _, unit := range sliceUnits {
		block := blockByName(t, registry, unit.block)

		for logical := 0; logical < block.TotalPbPins(); logical++ {
			phys := unit.offset + logical

			gotSt, err := SubTileFromPinPhysicalNum(tile, phys)
			if err != nil {
				t.Fatalf("phys %d: SubTileFromPinPhysicalNum failed: %v", phys, err)
			}
			if gotSt != st {
				t.Fatalf("phys %d: wrong sub tile %s", phys, gotSt.Name)
			}

			gotCap, err := SubTileCapFromPinPhysicalNum(tile, phys)
			if err != nil {
				t.Fatalf("phys %d: SubTileCapFromPinPhysicalNum failed: %v", phys, err)
			}
			if gotCap != unit.slot {
				t.Fatalf("phys %d: expected capacity instance %d, got %d", phys, unit.slot, gotCap)
			}

			gotBlock, err := LogicalBlockFromPinPhysicalNum(tile, phys)
			if err != nil {
				t.Fatalf("phys %d: LogicalBlockFromPinPhysicalNum failed: %v", phys, err)
			}
			if gotBlock != block {
				t.Fatalf("phys %d: expected block %s, got %s", phys, block.Name, gotBlock.Name)
			}

			gotLogical, err := PinLogicalNumFromPinPhysicalNum(tile, phys)
			if err != nil {
				t.Fatalf("phys %d: PinLogicalNumFromPinPhysicalNum failed: %v", phys, err)
			}
			if gotLogical != logical {
				t.Fatalf("phys %d: expected logical pin %d, got %d", phys, logical, gotLogical)
			}

			pbPin, err := PbPinFromPinPhysicalNum(tile, phys)
			if err != nil {
				t.Fatalf("phys %d: PbPinFromPinPhysicalNum failed: %v", phys, err)
			}
			wantPin, _ := block.PbPinByNum(logical)
			if pbPin != wantPin {
				t.Fatalf("phys %d: resolved the wrong pin-graph pin", phys)
			}
		}
	}

	// Addresses beyond the flat space are inconsistent.
	if _, err := SubTileFromPinPhysicalNum(tile, 36); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected an inconsistency error past the flat space, got %v", err)
	}
	if _, err := SubTileFromPinPhysicalNum(tile, -1); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected an invariant violation for a negative address, got %v", err)
	}
}

func TestRootPinInverses(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	alpha := blockByName(t, registry, "ALPHA")

	// Root-level pins resolve to the representative site, the first one
	// declared, and to the instance-relative logical pin.
	for pin := 0; pin < tile.NumPins; pin++ {
		block, err := LogicalBlockFromPinPhysicalNum(tile, pin)
		if err != nil {
			t.Fatalf("pin %d: LogicalBlockFromPinPhysicalNum failed: %v", pin, err)
		}
		if block != alpha {
			t.Fatalf("pin %d: expected the representative site ALPHA, got %s", pin, block.Name)
		}

		logical, err := PinLogicalNumFromPinPhysicalNum(tile, pin)
		if err != nil {
			t.Fatalf("pin %d: PinLogicalNumFromPinPhysicalNum failed: %v", pin, err)
		}
		if want := pin % 3; logical != want {
			t.Fatalf("pin %d: expected logical pin %d, got %d", pin, want, logical)
		}
	}
}

func TestRootAndFlatSpacesAreDisjoint(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	st := tile.SubTiles[0]

	seen := make(map[int]bool)
	for _, unit := range sliceUnits {
		block := blockByName(t, registry, unit.block)
		for logical := 0; logical < block.TotalPbPins(); logical++ {
			pbPin, _ := block.PbPinByNum(logical)
			if pbPin.IsRootBlockPin() {
				continue
			}
			phys, err := PbPinPhysicalNum(tile, st, block, unit.slot, pbPin)
			if err != nil {
				t.Fatalf("PbPinPhysicalNum failed: %v", err)
			}
			if phys < tile.NumPins {
				t.Fatalf("internal pin numbered %d collides with the root space", phys)
			}
			if seen[phys] {
				t.Fatalf("physical number %d assigned twice", phys)
			}
			seen[phys] = true
		}
	}
}

func TestPinCounts(t *testing.T) {
	registry := buildRegistry(t, sliceArch)
	tile := tileByName(t, registry, "SLICE")
	alpha := blockByName(t, registry, "ALPHA")

	if got := TotalSubTilePins(tile.SubTiles[0]); got != 30 {
		t.Fatalf("TotalSubTilePins: expected 30, got %d", got)
	}
	if got := TotalTilePins(tile); got != 30 {
		t.Fatalf("TotalTilePins: expected 30, got %d", got)
	}
	if got := TileMaxPtc(tile, false); got != 6 {
		t.Fatalf("TileMaxPtc root: expected 6, got %d", got)
	}
	if got := TileMaxPtc(tile, true); got != 36 {
		t.Fatalf("TileMaxPtc flat: expected 36, got %d", got)
	}
	if got := TileNumPrimitiveClasses(tile); got != 14 {
		t.Fatalf("TileNumPrimitiveClasses: expected 14, got %d", got)
	}
	if got := MaxNumPins(alpha); got != 6 {
		t.Fatalf("MaxNumPins: expected 6, got %d", got)
	}
}
