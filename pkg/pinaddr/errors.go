package pinaddr

import "errors"

// ErrInconsistent marks an address that cannot be resolved against the
// supplied type descriptors: an index with no owning sub tile or class, or a
// missing direct-pin-map entry. It indicates a malformed or
// self-contradictory architecture description, never a transient condition;
// callers must treat it as fatal.
var ErrInconsistent = errors.New("pinaddr: inconsistent architecture")

// ErrInvariant marks the violation of a condition that registry construction
// is supposed to guarantee, such as a pin index beyond a tile's declared pin
// count or a class whose member pins are not contiguous within a port. These
// are programming-contract failures, not user-facing errors.
var ErrInvariant = errors.New("pinaddr: invariant violation")
