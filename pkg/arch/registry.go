// Package arch holds the immutable type registry of an FPGA architecture
// model: physical tile types, their sub tiles and ports, logical block types
// with their hierarchical pin graphs, and the derived index tables that the
// address translators in pkg/pinaddr query. A registry is built once from a
// textual architecture description and is read-only afterwards, so it is safe
// to share across any number of reader goroutines.
package arch

// Registry is the set of all physical tile types and logical block types of
// one architecture. Slice positions double as type indices.
type Registry struct {
	Tiles  []*PhysicalTileType
	Blocks []*LogicalBlockType

	tilesByName  map[string]*PhysicalTileType
	blocksByName map[string]*LogicalBlockType
}

// TileByName returns the physical tile type with the given name.
func (r *Registry) TileByName(name string) (*PhysicalTileType, bool) {
	tile, ok := r.tilesByName[name]
	return tile, ok
}

// BlockByName returns the logical block type with the given name.
func (r *Registry) BlockByName(name string) (*LogicalBlockType, bool) {
	block, ok := r.blocksByName[name]
	return block, ok
}

// Load parses and builds a registry from an architecture description file.
func Load(path string) (*Registry, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(file)
}

// LoadString parses and builds a registry from an in-memory description.
func LoadString(src string) (*Registry, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseString(src)
	if err != nil {
		return nil, err
	}
	return Build(file)
}
