package arch

import (
	"fmt"
)

// Build derives an immutable Registry from a parsed architecture file. All
// index tables the address translators rely on are computed here, once: pin
// and class numbering, the sub-tile to tile pin tables, the pin-graph
// number bimap, and the direct pin maps. After Build returns, nothing in the
// registry is ever mutated.
func Build(file *File) (*Registry, error) {
	r := &Registry{
		tilesByName:  make(map[string]*PhysicalTileType),
		blocksByName: make(map[string]*LogicalBlockType),
	}

	// Logical blocks come first: tiles reference them by site name.
	for _, decl := range file.Decls {
		if decl.Block == nil {
			continue
		}
		block, err := buildBlock(decl.Block, len(r.Blocks))
		if err != nil {
			return nil, err
		}
		if _, dup := r.blocksByName[block.Name]; dup {
			return nil, fmt.Errorf("arch: duplicate block type %s", block.Name)
		}
		r.Blocks = append(r.Blocks, block)
		r.blocksByName[block.Name] = block
	}

	for _, decl := range file.Decls {
		if decl.Tile == nil {
			continue
		}
		tile, err := r.buildTile(decl.Tile, len(r.Tiles))
		if err != nil {
			return nil, err
		}
		if _, dup := r.tilesByName[tile.Name]; dup {
			return nil, fmt.Errorf("arch: duplicate tile type %s", tile.Name)
		}
		r.Tiles = append(r.Tiles, tile)
		r.tilesByName[tile.Name] = tile
	}

	return r, nil
}

func buildBlock(decl *BlockDecl, index int) (*LogicalBlockType, error) {
	block := &LogicalBlockType{
		Name:     decl.Name,
		Index:    index,
		numByPin: make(map[*PbGraphPin]int),
		pinClass: make(map[*PbGraphPin]int),
	}

	root, err := buildPbNode(decl.Name, decl.Ports(), nil)
	if err != nil {
		return nil, err
	}
	for _, prim := range decl.Primitives() {
		child, err := buildPbNode(prim.Name, prim.Ports, root)
		if err != nil {
			return nil, fmt.Errorf("%w (block %s)", err, decl.Name)
		}
		root.Children = append(root.Children, child)
	}
	block.Root = root

	// Logical pin numbering: root pins first, then each primitive's pins,
	// each node in its canonical enumeration order.
	number := func(node *PbGraphNode) {
		for _, pin := range node.Pins() {
			block.numByPin[pin] = len(block.pinByNum)
			block.pinByNum = append(block.pinByNum, pin)
		}
	}
	number(root)
	for _, child := range root.Children {
		number(child)
	}

	// Primitive classes follow the same enumeration order, so class members
	// ascend with logical pin numbers.
	for _, child := range root.Children {
		for _, port := range portsInPinOrder(child) {
			classType := PinSink
			if port.Dir == DirOutput {
				classType = PinDriver
			}
			if port.Equivalent {
				class := Class{Type: classType}
				for _, pin := range port.Pins {
					class.Pins = append(class.Pins, block.numByPin[pin])
					block.pinClass[pin] = len(block.PrimitiveClasses)
				}
				block.PrimitiveClasses = append(block.PrimitiveClasses, class)
				continue
			}
			for _, pin := range port.Pins {
				block.pinClass[pin] = len(block.PrimitiveClasses)
				block.PrimitiveClasses = append(block.PrimitiveClasses, Class{
					Type: classType,
					Pins: []int{block.numByPin[pin]},
				})
			}
		}
	}

	return block, nil
}

func buildPbNode(name string, ports []*PortDecl, parent *PbGraphNode) (*PbGraphNode, error) {
	node := &PbGraphNode{Name: name, parent: parent}
	seen := make(map[string]bool)
	for i, pd := range ports {
		if pd.Width < 1 {
			return nil, fmt.Errorf("arch: port %s.%s has zero width", name, pd.Name)
		}
		if seen[pd.Name] {
			return nil, fmt.Errorf("arch: duplicate port %s within %s", pd.Name, name)
		}
		seen[pd.Name] = true

		port := &PbPort{
			Name:       pd.Name,
			Index:      i,
			Dir:        pd.Direction(),
			Equivalent: pd.Equivalent,
			NumPins:    pd.Width,
		}
		port.Pins = make([]*PbGraphPin, pd.Width)
		for j := range port.Pins {
			port.Pins[j] = &PbGraphPin{Port: port, PinNumber: j, Node: node}
		}
		node.Ports = append(node.Ports, port)
	}

	// Absolute pin indices follow the canonical enumeration order, not the
	// declaration order, so they agree with logical pin numbering.
	first := 0
	for _, port := range portsInPinOrder(node) {
		port.AbsoluteFirstPin = first
		first += port.NumPins
	}
	return node, nil
}

func portsInPinOrder(node *PbGraphNode) []*PbPort {
	ports := make([]*PbPort, 0, len(node.Ports))
	for _, dir := range []PortDirection{DirInput, DirOutput, DirClock} {
		for _, port := range node.Ports {
			if port.Dir == dir {
				ports = append(ports, port)
			}
		}
	}
	return ports
}

func (r *Registry) buildTile(decl *TileDecl, index int) (*PhysicalTileType, error) {
	tile := &PhysicalTileType{
		Name:       decl.Name,
		Index:      index,
		directMaps: make(map[directKey]*DirectMap),
	}

	// Duplicate port names anywhere within one tile make name-based pin
	// lookup ambiguous, so they are rejected at load time rather than
	// producing silent first-match results at query time.
	seenPorts := make(map[string]string)

	for stIdx, stDecl := range decl.SubTiles {
		st := &SubTile{
			Name:     stDecl.Name,
			Index:    stIdx,
			Capacity: Capacity{Low: 0, High: 0},
		}
		if c := stDecl.Capacity; c != nil {
			if c.Low < 0 || c.High < c.Low {
				return nil, fmt.Errorf("arch: tile %s sub_tile %s has malformed capacity [%d:%d]",
					decl.Name, stDecl.Name, c.Low, c.High)
			}
			st.Capacity = Capacity{Low: c.Low, High: c.High}
		}

		for _, siteName := range stDecl.Sites() {
			block, ok := r.blocksByName[siteName]
			if !ok {
				return nil, fmt.Errorf("arch: tile %s sub_tile %s references unknown site %s",
					decl.Name, stDecl.Name, siteName)
			}
			st.EquivalentSites = append(st.EquivalentSites, block)
		}
		if len(st.EquivalentSites) == 0 {
			return nil, fmt.Errorf("arch: tile %s sub_tile %s declares no sites", decl.Name, stDecl.Name)
		}

		first := 0
		for i, pd := range stDecl.Ports() {
			if pd.Width < 1 {
				return nil, fmt.Errorf("arch: port %s.%s has zero width", stDecl.Name, pd.Name)
			}
			if prev, dup := seenPorts[pd.Name]; dup {
				return nil, fmt.Errorf("arch: tile %s declares port %s in both sub_tile %s and sub_tile %s",
					decl.Name, pd.Name, prev, stDecl.Name)
			}
			seenPorts[pd.Name] = stDecl.Name

			st.Ports = append(st.Ports, Port{
				Name:             pd.Name,
				Index:            i,
				Dir:              pd.Direction(),
				Equivalent:       pd.Equivalent,
				AbsoluteFirstPin: first,
				NumPins:          pd.Width,
			})
			first += pd.Width
		}

		st.NumPhyPins = first * st.Capacity.Total()
		st.SubTileToTilePin = make([]int, st.NumPhyPins)
		for i := range st.SubTileToTilePin {
			st.SubTileToTilePin[i] = tile.NumPins + i
		}

		tile.SubTiles = append(tile.SubTiles, st)
		tile.NumPins += st.NumPhyPins
	}

	buildTileClasses(tile)

	for _, st := range tile.SubTiles {
		for _, block := range st.EquivalentSites {
			m, err := buildDirectMap(tile, st, block)
			if err != nil {
				return nil, err
			}
			tile.directMaps[directKey{blockIndex: block.Index, subTileIndex: st.Index}] = m
			linkEquivalentTile(block, tile)
		}
	}

	return tile, nil
}

// buildTileClasses numbers the root-level pin classes in the same
// linearization order as the pins themselves: sub tile, capacity instance,
// port. An equivalent port forms one class per instance; any other port
// contributes one single-pin class per pin.
func buildTileClasses(tile *PhysicalTileType) {
	tile.PinClass = make([]int, tile.NumPins)
	for _, st := range tile.SubTiles {
		perInst := st.InstNumPins()
		for slot := 0; slot < st.Capacity.Total(); slot++ {
			for pi := range st.Ports {
				port := &st.Ports[pi]
				classType := PinSink
				if port.Dir == DirOutput {
					classType = PinDriver
				}
				if port.Equivalent {
					class := Class{Type: classType}
					for j := 0; j < port.NumPins; j++ {
						global := st.SubTileToTilePin[slot*perInst+port.AbsoluteFirstPin+j]
						class.Pins = append(class.Pins, global)
						tile.PinClass[global] = len(tile.Classes)
					}
					tile.Classes = append(tile.Classes, class)
					continue
				}
				for j := 0; j < port.NumPins; j++ {
					global := st.SubTileToTilePin[slot*perInst+port.AbsoluteFirstPin+j]
					tile.PinClass[global] = len(tile.Classes)
					tile.Classes = append(tile.Classes, Class{
						Type: classType,
						Pins: []int{global},
					})
				}
			}
		}
	}
}

// buildDirectMap correlates a sub tile's per-instance ports with the root
// ports of one of its equivalent sites, by name. Root block ports with no
// counterpart on the sub tile stay unmapped; translating such a pin fails at
// query time, which is the behavior downstream consumers rely on to detect
// incomplete correspondences.
func buildDirectMap(tile *PhysicalTileType, st *SubTile, block *LogicalBlockType) (*DirectMap, error) {
	m := &DirectMap{
		logicalToSubTile: make(map[int]int),
		subTileToLogical: make(map[int]int),
	}
	for pi := range st.Ports {
		port := &st.Ports[pi]
		var rootPort *PbPort
		for _, bp := range block.Root.Ports {
			if bp.Name == port.Name {
				rootPort = bp
				break
			}
		}
		if rootPort == nil {
			return nil, fmt.Errorf("arch: tile %s sub_tile %s port %s has no counterpart on block %s",
				tile.Name, st.Name, port.Name, block.Name)
		}
		if rootPort.NumPins != port.NumPins {
			return nil, fmt.Errorf("arch: port %s is %d pins wide on sub_tile %s but %d on block %s",
				port.Name, port.NumPins, st.Name, rootPort.NumPins, block.Name)
		}
		if rootPort.Dir != port.Dir {
			return nil, fmt.Errorf("arch: port %s is %s on sub_tile %s but %s on block %s",
				port.Name, port.Dir, st.Name, rootPort.Dir, block.Name)
		}
		for j := 0; j < port.NumPins; j++ {
			logicalNum := block.numByPin[rootPort.Pins[j]]
			local := port.AbsoluteFirstPin + j
			m.logicalToSubTile[logicalNum] = local
			m.subTileToLogical[local] = logicalNum
		}
	}
	return m, nil
}

func linkEquivalentTile(block *LogicalBlockType, tile *PhysicalTileType) {
	for _, t := range block.EquivalentTiles {
		if t == tile {
			return
		}
	}
	block.EquivalentTiles = append(block.EquivalentTiles, tile)
}
