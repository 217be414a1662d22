package arch

import (
	"strings"
	"testing"
)

func buildFixture(t *testing.T, src string) *Registry {
	t.Helper()
	registry, err := LoadString(src)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return registry
}

func TestBuildDerivedTables(t *testing.T) {
	registry := buildFixture(t, parserFixture)

	tile, ok := registry.TileByName("SLICE")
	if !ok {
		t.Fatalf("tile SLICE missing from registry")
	}
	if tile.NumPins != 6 {
		t.Fatalf("SLICE: expected 6 root pins, got %d", tile.NumPins)
	}

	st := tile.SubTiles[0]
	if st.InstNumPins() != 3 {
		t.Fatalf("LU: expected 3 pins per instance, got %d", st.InstNumPins())
	}
	if len(st.SubTileToTilePin) != 6 {
		t.Fatalf("LU: expected a 6-entry pin table, got %d", len(st.SubTileToTilePin))
	}
	for i, global := range st.SubTileToTilePin {
		if global != i {
			t.Fatalf("LU pin table[%d]: expected %d, got %d", i, i, global)
		}
	}

	// Root classes: per instance, one class for the equivalent in_a port and
	// one for out_a, in linearization order.
	if len(tile.Classes) != 4 {
		t.Fatalf("SLICE: expected 4 root classes, got %d", len(tile.Classes))
	}
	if got := tile.Classes[0].Pins; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("class 0: expected pins [0 1], got %v", got)
	}
	if tile.Classes[1].Type != PinDriver {
		t.Fatalf("class 1 (out_a) should be a driver")
	}
	if tile.Classes[2].Pins[0] != 3 {
		t.Fatalf("class 2 should start at pin 3, got %v", tile.Classes[2].Pins)
	}
	for pin, want := range []int{0, 0, 1, 2, 2, 3} {
		if tile.PinClass[pin] != want {
			t.Fatalf("PinClass[%d]: expected %d, got %d", pin, want, tile.PinClass[pin])
		}
	}

	alpha, _ := registry.BlockByName("ALPHA")
	beta, _ := registry.BlockByName("BETA")
	if alpha.TotalPbPins() != 6 {
		t.Fatalf("ALPHA: expected 6 pin-graph pins, got %d", alpha.TotalPbPins())
	}
	if beta.TotalPbPins() != 9 {
		t.Fatalf("BETA: expected 9 pin-graph pins, got %d", beta.TotalPbPins())
	}
	if alpha.RootNumPins() != 3 {
		t.Fatalf("ALPHA: expected 3 root pins, got %d", alpha.RootNumPins())
	}

	// Logical pin numbering round-trips through the bimap.
	for num := 0; num < alpha.TotalPbPins(); num++ {
		pin, ok := alpha.PbPinByNum(num)
		if !ok {
			t.Fatalf("ALPHA: pin number %d missing from bimap", num)
		}
		back, ok := alpha.PbPinNum(pin)
		if !ok || back != num {
			t.Fatalf("ALPHA: pin number %d round-tripped to %d", num, back)
		}
	}

	// ALPHA primitive classes: ALU.x (equivalent) then ALU.y.
	if len(alpha.PrimitiveClasses) != 2 {
		t.Fatalf("ALPHA: expected 2 primitive classes, got %d", len(alpha.PrimitiveClasses))
	}
	if got := alpha.PrimitiveClasses[0].Pins; len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("ALPHA class 0: expected pins [3 4], got %v", got)
	}
	if alpha.PrimitiveClasses[1].Type != PinDriver {
		t.Fatalf("ALPHA class 1 (ALU.y) should be a driver")
	}

	// BETA primitive classes: m[0], m[1], m[2], p (equivalent), ck.
	if len(beta.PrimitiveClasses) != 5 {
		t.Fatalf("BETA: expected 5 primitive classes, got %d", len(beta.PrimitiveClasses))
	}
	if got := beta.PrimitiveClasses[3].Pins; len(got) != 2 || got[0] != 6 || got[1] != 7 {
		t.Fatalf("BETA class 3: expected pins [6 7], got %v", got)
	}

	// Direct maps exist for both sites and are instance-relative.
	for _, block := range []*LogicalBlockType{alpha, beta} {
		m, ok := tile.DirectPinMap(block.Index, st.Index)
		if !ok {
			t.Fatalf("missing direct pin map for %s", block.Name)
		}
		for logical := 0; logical < block.RootNumPins(); logical++ {
			local, ok := m.SubTilePin(logical)
			if !ok {
				t.Fatalf("%s: logical pin %d has no direct map entry", block.Name, logical)
			}
			back, ok := m.LogicalPin(local)
			if !ok || back != logical {
				t.Fatalf("%s: logical pin %d round-tripped to %d", block.Name, logical, back)
			}
		}
	}

	if len(alpha.EquivalentTiles) != 1 || alpha.EquivalentTiles[0] != tile {
		t.Fatalf("ALPHA: expected SLICE as its only equivalent tile")
	}
}

func TestBuildRejectsUnknownSite(t *testing.T) {
	_, err := LoadString(`tile T { sub_tile S { site NOPE input i[1] } }`)
	if err == nil || !strings.Contains(err.Error(), "unknown site") {
		t.Fatalf("expected an unknown-site error, got %v", err)
	}
}

func TestBuildRejectsDuplicateTilePort(t *testing.T) {
	_, err := LoadString(`
block B { input i[1] }
block C { input i[1] }
tile T {
    sub_tile S1 { site B input i[1] }
    sub_tile S2 { site C input i[1] }
}
`)
	if err == nil || !strings.Contains(err.Error(), "sub_tile S1 and sub_tile S2") {
		t.Fatalf("expected a duplicate-port error, got %v", err)
	}
}

func TestBuildRejectsWidthMismatch(t *testing.T) {
	_, err := LoadString(`
block B { input i[2] }
tile T { sub_tile S { site B input i[1] } }
`)
	if err == nil || !strings.Contains(err.Error(), "pins wide") {
		t.Fatalf("expected a width-mismatch error, got %v", err)
	}
}

func TestBuildRejectsMalformedCapacity(t *testing.T) {
	_, err := LoadString(`
block B { input i[1] }
tile T { sub_tile S capacity [3:1] { site B input i[1] } }
`)
	if err == nil || !strings.Contains(err.Error(), "malformed capacity") {
		t.Fatalf("expected a malformed-capacity error, got %v", err)
	}
}

func TestBuildRejectsMissingCounterpart(t *testing.T) {
	_, err := LoadString(`
block B { input i[1] }
tile T { sub_tile S { site B input j[1] } }
`)
	if err == nil || !strings.Contains(err.Error(), "no counterpart") {
		t.Fatalf("expected a missing-counterpart error, got %v", err)
	}
}
