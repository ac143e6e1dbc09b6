package workload

import (
	"fmt"

	"github.com/npillmayer/treap"
)

// Kind is the type of an action.
type Kind int8

// Kinds of actions.
const (
	Insertion Kind = iota
	Deletion
	Search
)

func (k Kind) String() string {
	switch k {
	case Insertion:
		return "insert"
	case Deletion:
		return "delete"
	case Search:
		return "search"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is a single operation on a set. Insertions carry an element,
// deletions and searches a key.
type Action struct {
	Kind    Kind
	Element treap.Element
	Key     treap.Key
}

func (a Action) String() string {
	if a.Kind == Insertion {
		return fmt.Sprintf("%s %v", a.Kind, a.Element)
	}
	return fmt.Sprintf("%s %d", a.Kind, a.Key)
}
