package treap

import (
	"github.com/npillmayer/treap/prio"
)

// Treap is a randomized binary search tree of elements.
//
// The zero value is not usable; create treaps with New or NewWithConfig.
type Treap struct {
	root  *node
	size  int
	prios prio.Source
}

type node struct {
	x        Element
	priority uint64
	left     *node
	right    *node
}

func (n *node) rank() rank {
	return rank{priority: n.priority, key: n.x.Key, id: n.x.ID}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// New creates an empty treap with a randomly seeded priority source.
func New() *Treap {
	t, err := NewWithConfig(Config{})
	assert(err == nil, "default treap configuration is invalid")
	return t
}

// NewWithConfig creates an empty treap with validated configuration.
func NewWithConfig(cfg Config) (*Treap, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Treap{prios: cfg.Priorities}, nil
}

// Len returns the number of elements in the treap.
func (t *Treap) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the treap holds no elements.
func (t *Treap) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert adds an element to the treap.
//
// Elements are expected to carry unique IDs; keys may repeat.
func (t *Treap) Insert(x Element) {
	t.root = t.insert(t.root, x)
	t.size++
}

func (t *Treap) insert(n *node, x Element) *node {
	if n == nil {
		return &node{x: x, priority: uint64(t.prios.Uint32())}
	}
	if x.Before(n.x) {
		n.left = t.insert(n.left, x)
	} else {
		n.right = t.insert(n.right, x)
	}
	n, _ = repair(n)
	return n
}

// Search finds an element with key k. If more than one element carries
// key k, the first one met on the search path is returned.
func (t *Treap) Search(k Key) (Element, bool) {
	if t == nil {
		return Element{}, false
	}
	n := t.root
	for n != nil {
		switch {
		case k < n.x.Key:
			n = n.left
		case k > n.x.Key:
			n = n.right
		default:
			return n.x, true
		}
	}
	return Element{}, false
}

// Delete removes an element with key k. Deleting an absent key is a no-op.
// If more than one element carries key k, the first one met on the search
// path is removed.
func (t *Treap) Delete(k Key) {
	if t == nil {
		return
	}
	slot := t.locate(k)
	if *slot == nil {
		return
	}
	target := *slot
	target.priority = demoted
	for {
		top, rot := repair(target)
		*slot = top
		switch rot {
		case rotatedRight:
			slot = &top.right
		case rotatedLeft:
			slot = &top.left
		default:
			assert(target.isLeaf(), "demoted node kept a child")
			*slot = nil
			t.size--
			return
		}
	}
}

// locate returns the slot holding the first node with key k met on the
// search path, or the empty slot where the search ended.
func (t *Treap) locate(k Key) **node {
	slot := &t.root
	for n := *slot; n != nil; n = *slot {
		switch {
		case k < n.x.Key:
			slot = &n.left
		case k > n.x.Key:
			slot = &n.right
		default:
			return slot
		}
	}
	return slot
}
