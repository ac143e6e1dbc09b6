package treap

import "fmt"

// ID identifies an element. IDs are expected to be unique per tree.
type ID = uint64

// Key is the search key of an element. Keys may repeat.
type Key = uint32

// Element is the unit of storage for both the treap and its competitors.
type Element struct {
	ID  ID
	Key Key
}

// Before reports whether x orders strictly before y, comparing keys first and
// IDs second.
func (x Element) Before(y Element) bool {
	if x.Key != y.Key {
		return x.Key < y.Key
	}
	return x.ID < y.ID
}

func (x Element) String() string {
	return fmt.Sprintf("(%d,%d)", x.ID, x.Key)
}

// rank orders nodes for the heap property. The priority is wider than the
// 32 bits drawn at node creation, which leaves room for demotion.
type rank struct {
	priority uint64
	key      Key
	id       ID
}

// demoted is a priority losing against every priority drawn from a source.
const demoted = uint64(1) << 32

func (r rank) before(s rank) bool {
	if r.priority != s.priority {
		return r.priority < s.priority
	}
	if r.key != s.key {
		return r.key < s.key
	}
	return r.id < s.id
}
