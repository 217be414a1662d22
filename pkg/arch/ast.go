package arch

// File represents a complete architecture description: any number of logical
// block declarations followed (in any interleaving) by physical tile
// declarations.
type File struct {
	Decls []*Decl `parser:"@@*"`
}

// Decl is one top-level declaration.
type Decl struct {
	Block *BlockDecl `parser:"  @@"`
	Tile  *TileDecl  `parser:"| @@"`
}

// BlockDecl declares a logical block type: its root-level ports and its
// descendant primitive nodes.
// Example: block BUFG_SITE { input clk_in[1] primitive BUF { ... } }
type BlockDecl struct {
	Name string       `parser:"KwBlock @Ident LBrace"`
	Body []*BlockItem `parser:"@@* RBrace"`
}

// BlockItem is one entry of a block body.
type BlockItem struct {
	Port      *PortDecl      `parser:"  @@"`
	Primitive *PrimitiveDecl `parser:"| @@"`
}

// Ports returns the block's root-level port declarations in order.
func (b *BlockDecl) Ports() []*PortDecl {
	var ports []*PortDecl
	for _, item := range b.Body {
		if item.Port != nil {
			ports = append(ports, item.Port)
		}
	}
	return ports
}

// Primitives returns the block's primitive declarations in order.
func (b *BlockDecl) Primitives() []*PrimitiveDecl {
	var prims []*PrimitiveDecl
	for _, item := range b.Body {
		if item.Primitive != nil {
			prims = append(prims, item.Primitive)
		}
	}
	return prims
}

// PrimitiveDecl declares one leaf primitive node of a block's pin graph.
type PrimitiveDecl struct {
	Name  string      `parser:"KwPrimitive @Ident LBrace"`
	Ports []*PortDecl `parser:"@@* RBrace"`
}

// PortDecl declares one port of a block, primitive, or sub tile.
// Example: output clk_out[2] equivalent
type PortDecl struct {
	Dir        string `parser:"@( KwInput | KwOutput | KwClock )"`
	Name       string `parser:"@Ident"`
	Width      int    `parser:"LBracket @Integer RBracket"`
	Equivalent bool   `parser:"@KwEquivalent?"`
}

// Direction maps the declared keyword onto a PortDirection.
func (p *PortDecl) Direction() PortDirection {
	switch p.Dir {
	case "output":
		return DirOutput
	case "clock":
		return DirClock
	}
	return DirInput
}

// TileDecl declares a physical tile type as an ordered list of sub tiles.
type TileDecl struct {
	Name     string         `parser:"KwTile @Ident LBrace"`
	SubTiles []*SubTileDecl `parser:"@@* RBrace"`
}

// SubTileDecl declares one sub tile: its capacity range, the logical block
// types allowed to occupy an instance, and its per-instance ports.
// Example: sub_tile BUFG capacity [0:3] { site BUFG_SITE input clk_in[1] }
type SubTileDecl struct {
	Name     string         `parser:"KwSubTile @Ident"`
	Capacity *CapacityDecl  `parser:"@@?"`
	Body     []*SubTileItem `parser:"LBrace @@* RBrace"`
}

// CapacityDecl is the optional [low:high] instance range; absent means [0:0].
type CapacityDecl struct {
	Low  int `parser:"KwCapacity LBracket @Integer"`
	High int `parser:"Colon @Integer RBracket"`
}

// SubTileItem is one entry of a sub tile body.
type SubTileItem struct {
	Site string    `parser:"  KwSite @Ident"`
	Port *PortDecl `parser:"| @@"`
}

// Sites returns the declared equivalent site names in order.
func (s *SubTileDecl) Sites() []string {
	var sites []string
	for _, item := range s.Body {
		if item.Site != "" {
			sites = append(sites, item.Site)
		}
	}
	return sites
}

// Ports returns the sub tile's port declarations in order.
func (s *SubTileDecl) Ports() []*PortDecl {
	var ports []*PortDecl
	for _, item := range s.Body {
		if item.Port != nil {
			ports = append(ports, item.Port)
		}
	}
	return ports
}
