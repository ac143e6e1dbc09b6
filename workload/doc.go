/*
Package workload generates synthetic operation sequences and times
set implementations against them.

A Generator produces insertions with monotonically increasing IDs,
deletions of (mostly) live keys and searches for random keys. Experiments
turn generated actions into timed runs against every contender: the treap,
the dynamic array and, optionally, a B-tree as a reference. A Runner
executes experiments one after the other and broadcasts a Report for every
measurement to its subscribers.

Nothing in this package affects the correctness of the structures under
test; it only exercises them.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package workload

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
