/*
Package dynarray provides an unordered dynamic array of elements.

The array serves as a baseline to compare the treap against. It stores
elements in a fixed-capacity buffer, doubles the buffer when it is full and
halves it when occupancy drops below a quarter of its capacity. Search and
delete scan linearly.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dynarray

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treap"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrInvalidConfig signals an invalid array configuration.
	ErrInvalidConfig = errors.New("dynarray: invalid configuration")
	// ErrCapacity signals a capacity not derived from the initial capacity by doubling.
	ErrCapacity = errors.New("dynarray: capacity invariant violated")
)

// DefaultInitialCapacity is used when Config.InitialCapacity is 0.
const DefaultInitialCapacity = 1

// Config configures a dynamic array.
type Config struct {
	// InitialCapacity is the smallest capacity the array will ever have.
	InitialCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: negative initial capacity %d", ErrInvalidConfig, cfg.InitialCapacity)
	}
	return nil
}

// Array is an unordered collection of elements.
type Array struct {
	// n is the logical length; valid elements are buf[:n].
	n int
	// buf is the backing storage, len(buf) is the capacity.
	buf     []treap.Element
	initial int
}

// New creates an empty array with default configuration.
func New() *Array {
	a, _ := NewWithConfig(Config{})
	return a
}

// NewWithConfig creates an empty array with validated configuration.
func NewWithConfig(cfg Config) (*Array, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Array{
		buf:     make([]treap.Element, cfg.InitialCapacity),
		initial: cfg.InitialCapacity,
	}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.n
}

// Cap returns the current capacity of the backing buffer.
func (a *Array) Cap() int {
	return len(a.buf)
}

// Insert appends x, doubling the capacity if the buffer is full.
func (a *Array) Insert(x treap.Element) {
	if a.n == len(a.buf) {
		a.resize(2 * len(a.buf))
	}
	a.buf[a.n] = x
	a.n++
}

// Delete removes the first element with key k. The last element takes its
// place, so deletion does not preserve order. Deleting an absent key is a
// no-op.
func (a *Array) Delete(k treap.Key) {
	i := a.index(k)
	if i < 0 {
		return
	}
	a.n--
	a.buf[i] = a.buf[a.n]
	a.buf[a.n] = treap.Element{}
	if 4*a.n < len(a.buf) && len(a.buf) > a.initial {
		a.resize(len(a.buf) / 2)
	}
}

// Search returns the first element with key k.
func (a *Array) Search(k treap.Key) (treap.Element, bool) {
	if i := a.index(k); i >= 0 {
		return a.buf[i], true
	}
	return treap.Element{}, false
}

func (a *Array) index(k treap.Key) int {
	for i, x := range a.buf[:a.n] {
		if x.Key == k {
			return i
		}
	}
	return -1
}

func (a *Array) resize(capacity int) {
	if capacity < a.n {
		panic("dynarray resize would drop elements")
	}
	T().Debugf("dynarray: resize %d -> %d at length %d", len(a.buf), capacity, a.n)
	buf := make([]treap.Element, capacity)
	copy(buf, a.buf[:a.n])
	a.buf = buf
}

// Check validates the capacity invariant: the capacity is the initial
// capacity times a power of two, and holds all elements.
func (a *Array) Check() error {
	if a.n < 0 || a.n > len(a.buf) {
		return fmt.Errorf("%w: length %d exceeds capacity %d", ErrCapacity, a.n, len(a.buf))
	}
	c := len(a.buf)
	if c < a.initial || c%a.initial != 0 {
		return fmt.Errorf("%w: capacity %d not a multiple of %d", ErrCapacity, c, a.initial)
	}
	if m := c / a.initial; m&(m-1) != 0 {
		return fmt.Errorf("%w: capacity %d is %d times the initial capacity", ErrCapacity, c, m)
	}
	return nil
}
