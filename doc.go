/*
Package treap implements a randomized binary search tree over keyed elements.

Treaps

A treap (a portmanteau of tree and heap) stores its elements in binary search
tree order while simultaneously keeping randomly assigned node priorities in
heap order. Every node receives a uniformly distributed priority when it is
created. Among all binary trees respecting the element order, the priorities
select exactly one shape, and that shape is distributed like a binary search
tree built from a random insertion order. The expected depth of every node is
therefore O(log n), regardless of the order in which elements arrive.

From Aragon and Seidel, 1989:

Randomized Search Trees

We present a randomized strategy for maintaining balance in dynamically
changing search trees that has optimal expected behavior. In particular, in
the expected case an update takes logarithmic time and requires fewer than
two rotations. […]

_________________________________________________________________________

Elements are pairs (ID, Key). Tree placement orders elements by key first and
by ID second, which makes every set of elements with distinct IDs totally
ordered, even if keys repeat. Lookup and deletion address elements by key only.

Priorities follow a min-heap convention: the node nearest to the root carries
the smallest rank, where a rank is the triple (priority, key, ID). Insertion
repairs the heap order on the way back up with single rotations; deletion
demotes the target to a rank beyond any priority and rotates it down until it
is a leaf, then drops it.

The package offers diagnostics beyond the three core operations: Check
validates both orderings, Depths and DepthOf support statistics on tree
shape, and Treap2Dot renders a tree in Graphviz format.

A Treap is not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package treap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
