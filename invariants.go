package treap

import "fmt"

// Check validates the structural invariants of a treap: search tree order
// over (key, ID), heap order over (priority, key, ID), and the bookkeeping
// of the element count.
//
// Check walks the whole tree and is meant for tests and diagnostics.
func (t *Treap) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil treap", ErrInvalidConfig)
	}
	count, err := checkNode(t.root, nil, nil)
	if err != nil {
		T().Errorf("treap invariant broken: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree holds %d elements, count is %d", ErrSizeMismatch, count, t.size)
	}
	return nil
}

// checkNode validates the subtree at n, whose elements must lie strictly
// between lo and hi (nil bounds are open). It returns the subtree's size.
func checkNode(n *node, lo, hi *Element) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && !lo.Before(n.x) {
		return 0, fmt.Errorf("%w: %v not after %v", ErrBSTOrder, n.x, *lo)
	}
	if hi != nil && !n.x.Before(*hi) {
		return 0, fmt.Errorf("%w: %v not before %v", ErrBSTOrder, n.x, *hi)
	}
	if n.priority >= demoted {
		return 0, fmt.Errorf("%w: %v still carries a demoted priority", ErrHeapOrder, n.x)
	}
	for _, c := range [...]*node{n.left, n.right} {
		if c != nil && c.rank().before(n.rank()) {
			return 0, fmt.Errorf("%w: child %v (priority %d) ranks before parent %v (priority %d)",
				ErrHeapOrder, c.x, c.priority, n.x, n.priority)
		}
	}
	lcnt, err := checkNode(n.left, lo, &n.x)
	if err != nil {
		return 0, err
	}
	rcnt, err := checkNode(n.right, &n.x, hi)
	if err != nil {
		return 0, err
	}
	return lcnt + rcnt + 1, nil
}
