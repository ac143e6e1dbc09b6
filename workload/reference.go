package workload

import (
	"github.com/google/btree"
	"github.com/npillmayer/treap"
)

// referenceDegree is the B-tree degree of the reference contender.
const referenceDegree = 32

// BTreeSet is a set backed by an in-memory B-tree. It orders elements the
// way the treap does and serves as a reference for both correctness and
// timing.
type BTreeSet struct {
	tree *btree.BTreeG[treap.Element]
}

// NewBTreeSet creates an empty B-tree set.
func NewBTreeSet() *BTreeSet {
	return &BTreeSet{tree: btree.NewG[treap.Element](referenceDegree, treap.Element.Before)}
}

// Len returns the number of elements.
func (s *BTreeSet) Len() int {
	return s.tree.Len()
}

// Insert adds x. An element with equal key and ID is replaced.
func (s *BTreeSet) Insert(x treap.Element) {
	s.tree.ReplaceOrInsert(x)
}

// Search returns the element with key k and the smallest ID.
func (s *BTreeSet) Search(k treap.Key) (treap.Element, bool) {
	var found treap.Element
	ok := false
	s.tree.AscendGreaterOrEqual(treap.Element{Key: k}, func(x treap.Element) bool {
		found, ok = x, x.Key == k
		return false
	})
	return found, ok
}

// Delete removes the element with key k and the smallest ID.
func (s *BTreeSet) Delete(k treap.Key) {
	if x, ok := s.Search(k); ok {
		s.tree.Delete(x)
	}
}
