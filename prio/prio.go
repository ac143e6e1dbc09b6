/*
Package prio supplies the random values a treap lives on.

The same uniform distribution serves two purposes: it provides the
priorities assigned to treap nodes at creation time, and it provides keys for
synthetic workloads.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package prio

import (
	"math/rand/v2"
)

// MaxKey is the upper bound (inclusive) of keys generated for workloads.
const MaxKey = 10_000_000

// Source produces uniformly distributed 32-bit values.
//
// A Source is not safe for concurrent use; every structure owns its own.
type Source interface {
	Uint32() uint32
}

type pcgSource struct {
	rnd *rand.Rand
}

func (s pcgSource) Uint32() uint32 {
	return s.rnd.Uint32()
}

// NewSource creates a deterministic source for a given seed.
// Two sources created with the same seed produce the same sequence.
func NewSource(seed uint64) Source {
	return pcgSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Default returns a freshly seeded source.
func Default() Source {
	return NewSource(rand.Uint64())
}

// Key draws a key uniformly from [0, MaxKey].
func Key(src Source) uint32 {
	return Below(src, MaxKey+1)
}

// Below draws a value uniformly from [0, n). n must be positive.
//
// Uses Lemire's multiply-shift with rejection to avoid modulo bias.
func Below(src Source, n uint32) uint32 {
	if n == 0 {
		panic("prio.Below called with n=0")
	}
	m := uint64(src.Uint32()) * uint64(n)
	if low := uint32(m); low < n {
		threshold := -n % n
		for low < threshold {
			m = uint64(src.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// Float draws a value uniformly from [0, 1).
func Float(src Source) float64 {
	return float64(src.Uint32()>>8) / (1 << 24)
}
