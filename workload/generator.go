package workload

import (
	"github.com/npillmayer/treap"
	"github.com/npillmayer/treap/prio"
)

// Generator produces actions. IDs start at 1 and increase with every
// generated element. The generator remembers the key of every element it
// produced, so that deletions can target elements which are still live.
type Generator struct {
	src       prio.Source
	nextID    treap.ID
	generated []slot // indexed by ID-1
}

type slot struct {
	key  treap.Key
	live bool
}

// NewGenerator creates a generator drawing keys and choices from src.
func NewGenerator(src prio.Source) *Generator {
	if src == nil {
		src = prio.Default()
	}
	return &Generator{src: src, nextID: 1}
}

// Source returns the random source of the generator.
func (g *Generator) Source() prio.Source {
	return g.src
}

// Element creates a new element with a fresh ID and a random key.
func (g *Generator) Element() treap.Element {
	x := treap.Element{ID: g.nextID, Key: prio.Key(g.src)}
	g.nextID++
	g.generated = append(g.generated, slot{key: x.Key, live: true})
	return x
}

// Insertion creates an insertion of a new element.
func (g *Generator) Insertion() Action {
	return Action{Kind: Insertion, Element: g.Element()}
}

// Deletion picks a random element generated so far. If that element has not
// been deleted yet, the deletion targets its key and the element is marked
// dead. Otherwise, or if no element has been generated yet, the deletion
// targets a random key.
func (g *Generator) Deletion() Action {
	if len(g.generated) == 0 {
		return Action{Kind: Deletion, Key: prio.Key(g.src)}
	}
	i := prio.Below(g.src, uint32(len(g.generated)))
	if s := &g.generated[i]; s.live {
		s.live = false
		return Action{Kind: Deletion, Key: s.key}
	}
	return Action{Kind: Deletion, Key: prio.Key(g.src)}
}

// Search creates a search for a random key.
func (g *Generator) Search() Action {
	return Action{Kind: Search, Key: prio.Key(g.src)}
}

// Live returns the number of generated elements not yet targeted by a
// deletion.
func (g *Generator) Live() int {
	n := 0
	for _, s := range g.generated {
		if s.live {
			n++
		}
	}
	return n
}

// Insertions generates n insertions.
func (g *Generator) Insertions(n int) []Action {
	actions := make([]Action, 0, n)
	for range n {
		actions = append(actions, g.Insertion())
	}
	return actions
}

// Mix generates n actions. Each action is a deletion with probability
// pDelete, a search with probability pSearch, and an insertion otherwise.
func (g *Generator) Mix(n int, pDelete, pSearch float64) []Action {
	actions := make([]Action, 0, n)
	for range n {
		p := prio.Float(g.src)
		switch {
		case p < pDelete:
			actions = append(actions, g.Deletion())
		case p < pDelete+pSearch:
			actions = append(actions, g.Search())
		default:
			actions = append(actions, g.Insertion())
		}
	}
	return actions
}
