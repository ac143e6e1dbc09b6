package treap

// rotation tells which way repair turned a subtree.
type rotation int8

const (
	noRotation   rotation = iota
	rotatedRight          // left child promoted
	rotatedLeft           // right child promoted
)

// rotateRight turns (n (l a b) c) into (l a (n b c)) and returns l.
func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

// rotateLeft turns (n a (r b c)) into (r (n a b) c) and returns r.
func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

// repair restores the heap order between n and its children. If a child
// ranks before n, the child ranking first is rotated above n. repair returns
// the new root of the subtree and the rotation performed.
//
// Insertion calls repair once per level on the way up. Deletion calls it
// repeatedly on a demoted node, which then sinks by one level per call.
func repair(n *node) (*node, rotation) {
	promote := n.left
	if n.right != nil && (promote == nil || n.right.rank().before(promote.rank())) {
		promote = n.right
	}
	if promote == nil || !promote.rank().before(n.rank()) {
		return n, noRotation
	}
	if promote == n.left {
		return rotateRight(n), rotatedRight
	}
	return rotateLeft(n), rotatedLeft
}
