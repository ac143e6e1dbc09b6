package treap

// Depths returns the depth of every node in pre-order, where the root has
// depth 0. The result is empty for an empty treap.
func (t *Treap) Depths() []int {
	if t.IsEmpty() {
		return []int{}
	}
	depths := make([]int, 0, t.size)
	t.each(func(_ *node, depth int) {
		depths = append(depths, depth)
	})
	return depths
}

// DepthOf returns the depth of the first node with key k met on the search
// path. The second return value is false if k is not present.
func (t *Treap) DepthOf(k Key) (int, bool) {
	if t == nil {
		return 0, false
	}
	depth := 0
	for n := t.root; n != nil; depth++ {
		switch {
		case k < n.x.Key:
			n = n.left
		case k > n.x.Key:
			n = n.right
		default:
			return depth, true
		}
	}
	return 0, false
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty treap has height 0.
func (t *Treap) Height() int {
	h := 0
	if !t.IsEmpty() {
		t.each(func(_ *node, depth int) {
			h = max(h, depth+1)
		})
	}
	return h
}

// AverageDepth returns the mean node depth, or 0 for an empty treap.
func (t *Treap) AverageDepth() float64 {
	depths := t.Depths()
	if len(depths) == 0 {
		return 0
	}
	sum := 0
	for _, d := range depths {
		sum += d
	}
	return float64(sum) / float64(len(depths))
}

// each walks the tree in pre-order.
func (t *Treap) each(visit func(n *node, depth int)) {
	type frame struct {
		n     *node
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(f.n, f.depth)
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
	}
}
