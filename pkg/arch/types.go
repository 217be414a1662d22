package arch

// Open is the sentinel used throughout the API for "no such index": an
// unresolved port, a pin with no owning class, and so on. It is distinct
// from an error return; lookups that may legitimately come up empty report
// Open instead of failing.
const Open = -1

// PinType is the electrical role of a pin class.
type PinType int

const (
	// PinSink marks a class whose pins receive a signal (inputs, clocks).
	PinSink PinType = iota
	// PinDriver marks a class whose pins drive a signal (outputs).
	PinDriver
)

func (t PinType) String() string {
	switch t {
	case PinSink:
		return "sink"
	case PinDriver:
		return "driver"
	}
	return "unknown"
}

// PortDirection is the declared direction of a port.
type PortDirection int

const (
	DirInput PortDirection = iota
	DirOutput
	DirClock
)

func (d PortDirection) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirClock:
		return "clock"
	}
	return "unknown"
}

// Class groups electrically interchangeable pins. For a physical tile type
// the member pins are tile-global physical pin indices; for a logical block
// type's primitive classes they are logical (pin-graph) pin numbers.
type Class struct {
	Type PinType
	// Pins lists the member pin indices in ascending order.
	Pins []int
}

// NumPins returns the number of member pins.
func (c *Class) NumPins() int {
	return len(c.Pins)
}

// Port is one named pin group of a sub tile.
type Port struct {
	Name string
	// Index is the port's position within its sub tile's declaration order.
	Index int
	Dir   PortDirection
	// Equivalent marks all pins of the port as electrically interchangeable;
	// they share one class per capacity instance.
	Equivalent bool
	// AbsoluteFirstPin is the instance-relative index of the port's first
	// pin within the owning sub tile.
	AbsoluteFirstPin int
	NumPins          int
}

// SubTile is a homogeneous group of interchangeable instances within a
// physical tile. Each instance may host any of the equivalent sites.
type SubTile struct {
	Name  string
	Index int

	Capacity Capacity
	// NumPhyPins is the total root-level pin count across all instances.
	// Every instance contributes NumPhyPins / Capacity.Total() pins.
	NumPhyPins int

	// EquivalentSites lists the logical block types allowed to occupy an
	// instance, in declaration order.
	EquivalentSites []*LogicalBlockType

	// Ports lists the sub tile's ports in declaration order. Pin numbering
	// within one instance follows this order.
	Ports []Port

	// SubTileToTilePin maps a sub-tile-local pin number (covering all
	// instances) to the tile-global physical pin number.
	SubTileToTilePin []int
}

// InstNumPins returns the root-level pin count of a single capacity instance.
func (st *SubTile) InstNumPins() int {
	return st.NumPhyPins / st.Capacity.Total()
}

// DirectMap correlates a logical block's root pins with the instance-relative
// physical pins of one sub tile. It is built once from the architecture's pin
// correspondence declarations and queried in both directions.
type DirectMap struct {
	logicalToSubTile map[int]int
	subTileToLogical map[int]int
}

// SubTilePin returns the instance-relative sub-tile pin for a logical root
// pin number. The second result is false when no correspondence exists.
func (m *DirectMap) SubTilePin(logicalPin int) (int, bool) {
	pin, ok := m.logicalToSubTile[logicalPin]
	return pin, ok
}

// LogicalPin is the inverse of SubTilePin.
func (m *DirectMap) LogicalPin(subTilePin int) (int, bool) {
	pin, ok := m.subTileToLogical[subTilePin]
	return pin, ok
}

type directKey struct {
	blockIndex   int
	subTileIndex int
}

// PhysicalTileType describes one physical grid location's resources.
type PhysicalTileType struct {
	Name string
	// Index is the tile's position within the registry.
	Index int

	// NumPins is the total root-level physical pin count; the sum of all
	// sub tiles' NumPhyPins.
	NumPins int

	SubTiles []*SubTile

	// Classes holds the root-level pin classes, numbered in the same
	// linearization order as the pins themselves.
	Classes []Class
	// PinClass maps each root-level physical pin to its owning class index.
	PinClass []int

	directMaps map[directKey]*DirectMap
}

// DirectPinMap returns the pin correspondence table for a logical block
// occupying the given sub tile, or false when the pairing was never declared.
func (t *PhysicalTileType) DirectPinMap(blockIndex, subTileIndex int) (*DirectMap, bool) {
	m, ok := t.directMaps[directKey{blockIndex: blockIndex, subTileIndex: subTileIndex}]
	return m, ok
}

// LogicalBlockType describes a hardware primitive's abstract pin structure,
// independent of which tile hosts it.
type LogicalBlockType struct {
	Name string
	// Index is the block's position within the registry.
	Index int

	// Root is the top of the block's pin graph. Its direct pins are the
	// only ones with direct-map correspondences to physical tile pins.
	Root *PbGraphNode

	// PrimitiveClasses groups the pins of the block's primitive nodes into
	// equivalence classes, in linearization order. Member indices are
	// logical pin numbers.
	PrimitiveClasses []Class

	// EquivalentTiles lists the physical tile types with a sub tile that
	// accepts this block, in tile declaration order.
	EquivalentTiles []*PhysicalTileType

	pinByNum []*PbGraphPin
	numByPin map[*PbGraphPin]int
	pinClass map[*PbGraphPin]int
}

// TotalPbPins returns the pin count of the whole pin graph, root and
// primitive pins included. Logical pin numbers range over [0, TotalPbPins).
func (b *LogicalBlockType) TotalPbPins() int {
	return len(b.pinByNum)
}

// RootNumPins returns the pin count of the root node alone.
func (b *LogicalBlockType) RootNumPins() int {
	return b.Root.NumPins()
}

// PbPinByNum returns the pin-graph pin with the given logical number.
func (b *LogicalBlockType) PbPinByNum(num int) (*PbGraphPin, bool) {
	if num < 0 || num >= len(b.pinByNum) {
		return nil, false
	}
	return b.pinByNum[num], true
}

// PbPinNum returns the logical number of a pin-graph pin.
func (b *LogicalBlockType) PbPinNum(pin *PbGraphPin) (int, bool) {
	num, ok := b.numByPin[pin]
	return num, ok
}

// PrimitivePinClass returns the index into PrimitiveClasses of the class
// owning the given primitive pin, or Open for non-primitive pins.
func (b *LogicalBlockType) PrimitivePinClass(pin *PbGraphPin) int {
	if idx, ok := b.pinClass[pin]; ok {
		return idx
	}
	return Open
}
