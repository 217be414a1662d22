package arch

// PbPort is one named pin group of a pin-graph node.
type PbPort struct {
	Name string
	// Index is the port's position within the node's declaration order.
	Index int
	Dir   PortDirection
	// Equivalent marks all pins of the port as one equivalence class.
	Equivalent bool
	// AbsoluteFirstPin is the index of the port's first pin within the
	// owning node's pin enumeration.
	AbsoluteFirstPin int
	NumPins          int

	// Pins holds the port's pin-graph pins, one per bit.
	Pins []*PbGraphPin
}

// PbGraphNode is one node of a logical block's hierarchical pin graph: the
// root node describing the block's outward-facing pins, or a descendant
// primitive node.
type PbGraphNode struct {
	Name string

	// Ports lists the node's ports in declaration order.
	Ports []*PbPort

	// Children holds the descendant primitive nodes, in declaration order.
	Children []*PbGraphNode

	parent *PbGraphNode
}

// IsRoot reports whether the node is the top of its pin graph.
func (n *PbGraphNode) IsRoot() bool {
	return n.parent == nil
}

// IsPrimitive reports whether the node is a leaf primitive. Only primitive
// pins participate in a block's primitive equivalence classes.
func (n *PbGraphNode) IsPrimitive() bool {
	return n.parent != nil && len(n.Children) == 0
}

// NumPins returns the node's own pin count, children excluded.
func (n *PbGraphNode) NumPins() int {
	total := 0
	for _, port := range n.Ports {
		total += port.NumPins
	}
	return total
}

// Pins returns the node's own pins in canonical enumeration order: input
// ports first, then output ports, then clock ports, each group in
// declaration order.
func (n *PbGraphNode) Pins() []*PbGraphPin {
	pins := make([]*PbGraphPin, 0, n.NumPins())
	for _, dir := range []PortDirection{DirInput, DirOutput, DirClock} {
		for _, port := range n.Ports {
			if port.Dir != dir {
				continue
			}
			pins = append(pins, port.Pins...)
		}
	}
	return pins
}

// PbGraphPin is a single pin of a pin-graph node.
type PbGraphPin struct {
	Port *PbPort
	// PinNumber is the pin's index within its port.
	PinNumber int
	// Node is the pin's owning pin-graph node.
	Node *PbGraphNode
}

// IsRootBlockPin reports whether the pin sits on the root node and therefore
// has a direct-map correspondence to a physical tile pin.
func (p *PbGraphPin) IsRootBlockPin() bool {
	return p.Node.IsRoot()
}
