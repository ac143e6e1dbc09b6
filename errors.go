package treap

import "errors"

var (
	// ErrInvalidConfig signals an invalid treap configuration.
	ErrInvalidConfig = errors.New("treap: invalid configuration")
	// ErrBSTOrder signals a node whose subtree violates the (key, ID) order.
	ErrBSTOrder = errors.New("treap: search tree order violated")
	// ErrHeapOrder signals a child ranking before its parent.
	ErrHeapOrder = errors.New("treap: heap order violated")
	// ErrSizeMismatch signals that the element count drifted from the tree contents.
	ErrSizeMismatch = errors.New("treap: size mismatch")
)
