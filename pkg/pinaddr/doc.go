// Package pinaddr translates between the coexisting coordinate systems that
// address a physical tile's pins and pin-equivalence classes.
//
// A pin of a physical tile can be named four ways, and all four must agree:
//   - the tile-global physical pin number,
//   - the (sub tile, capacity instance, port, pin-in-port) tuple,
//   - the capacity-relative (capacity location, relative pin) pair,
//   - the occupying logical block's own pin-graph pin number.
//
// Classes have the same structure one level up: a tile-global physical class
// number versus the per-block primitive class index.
//
// # Linearization
//
// Every translation walks one canonical enumeration: sub tiles in
// declaration order, capacity instances from 0 upward, equivalent sites in
// declaration order. Pin numbering and class numbering both follow it, so
// the two address spaces are structurally isomorphic. The walk is factored
// into a single scan primitive parameterized by a per-unit size function;
// every translator in this package goes through it, which is what keeps the
// forward and inverse directions from silently diverging.
//
// # Root versus flat addressing
//
// Tile-global physical pin numbers below a tile's NumPins address root-level
// pins: the pins the tile physically exposes, reached from a logical block's
// root pins through the direct pin map. Pins of a block's internal pin graph
// have no direct-map entry; they are given flat numbers starting at NumPins,
// offset by the cumulative pin-graph pin counts of every preceding
// (sub tile, capacity instance, site) unit. The offset is recomputed on
// every query rather than cached; these lookups are off the routing hot
// path, and the recomputation keeps the registry free of derived mutable
// state. Physical class numbers exist only in the flat space, since
// root-level classes are exposed directly on the tile.
//
// # Errors
//
// Every function is a pure, deterministic query over the immutable registry;
// all of them are safe for concurrent use. Failures come in exactly two
// classes: ErrInconsistent, when an address cannot be resolved against the
// supplied descriptors (a malformed architecture, never recoverable), and
// ErrInvariant, when a caller breaks a contract the registry construction
// was supposed to guarantee. Neither is ever silently defaulted.
package pinaddr
