package workload

import (
	"github.com/npillmayer/treap"
	"github.com/npillmayer/treap/dynarray"
)

// Set is the capability shared by all contenders.
type Set interface {
	Insert(x treap.Element)
	Delete(k treap.Key)
	Search(k treap.Key) (treap.Element, bool)
}

var (
	_ Set = (*treap.Treap)(nil)
	_ Set = (*dynarray.Array)(nil)
	_ Set = (*BTreeSet)(nil)
)

// Tally counts what happened while applying actions.
type Tally struct {
	Insertions int
	Deletions  int
	Searches   int
	Hits       int // searches which found an element
}

// Apply applies actions to s in order.
func Apply(s Set, actions []Action) Tally {
	var tally Tally
	for _, a := range actions {
		switch a.Kind {
		case Insertion:
			s.Insert(a.Element)
			tally.Insertions++
		case Deletion:
			s.Delete(a.Key)
			tally.Deletions++
		case Search:
			if _, ok := s.Search(a.Key); ok {
				tally.Hits++
			}
			tally.Searches++
		}
	}
	return tally
}

// Contender names a set implementation and knows how to create an empty one.
type Contender struct {
	Name string
	New  func() Set
}

// Contenders returns the treap and the dynamic array, plus the B-tree
// reference if withReference is set. seed seeds the treap's priorities; 0
// selects random priorities.
func Contenders(seed uint64, withReference bool) []Contender {
	cs := []Contender{
		{Name: "treap", New: func() Set {
			t, err := treap.NewWithConfig(treap.Config{Seed: seed})
			if err != nil {
				panic(err)
			}
			return t
		}},
		{Name: "dynamic array", New: func() Set {
			return dynarray.New()
		}},
	}
	if withReference {
		cs = append(cs, Contender{Name: "btree", New: func() Set {
			return NewBTreeSet()
		}})
	}
	return cs
}
