package pinaddr

import (
	"testing"

	"github.com/amin1377/vtr-verilog-to-routing/pkg/arch"
)

// clockArch is the four-instance clock buffer tile: one sub tile, capacity
// [0:3], one single-bit port, so the tile exposes four root pins.
const clockArch = `
block BUFG_SITE {
    input clk_in[1]
    primitive BUF {
        input i[1]
    }
}
tile CLOCK_TILE {
    sub_tile BUFG capacity [0:3] {
        site BUFG_SITE
        input clk_in[1]
    }
}
`

// comboArch pairs a 6-pin sub tile with a 4-pin one, 10 root pins in total.
const comboArch = `
block ALPHA {
    input ia[4]
    output oa[2]
    primitive ALU {
        input x[2] equivalent
        output y[1]
    }
}
block BETA {
    input ib[3]
    output ob[1]
    primitive MULT {
        input m[2]
        output p[2] equivalent
    }
}
tile COMBO {
    sub_tile MAIN {
        site ALPHA
        input ia[4]
        output oa[2]
    }
    sub_tile AUX {
        site BETA
        input ib[3]
        output ob[1]
    }
}
`

// sliceArch exercises multiple equivalent sites in one multi-capacity sub
// tile whose capacity range does not start at zero.
const sliceArch = `
block ALPHA {
    input in_a[2]
    output out_a[1]
    primitive ALU {
        input x[2] equivalent
        output y[1]
    }
}
block BETA {
    input in_a[2]
    output out_a[1]
    primitive MAC {
        input m[3]
        output p[2] equivalent
        clock ck[1]
    }
}
tile SLICE {
    sub_tile LU capacity [2:3] {
        site ALPHA
        site BETA
        input in_a[2] equivalent
        output out_a[1]
    }
}
`

func buildRegistry(t *testing.T, src string) *arch.Registry {
	t.Helper()
	registry, err := arch.LoadString(src)
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return registry
}

func tileByName(t *testing.T, registry *arch.Registry, name string) *arch.PhysicalTileType {
	t.Helper()
	tile, ok := registry.TileByName(name)
	if !ok {
		t.Fatalf("tile %s missing from registry", name)
	}
	return tile
}

func blockByName(t *testing.T, registry *arch.Registry, name string) *arch.LogicalBlockType {
	t.Helper()
	block, ok := registry.BlockByName(name)
	if !ok {
		t.Fatalf("block %s missing from registry", name)
	}
	return block
}
