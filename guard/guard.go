// Package guard provides caller-side synchronization for enumoid
// containers, which are single-owner values with no locking of their own.
package guard

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used in structure padding to prevent false sharing.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// Guarded owns a value and serializes access to it with a reader/writer
// lock. It is padded to a cache line so that adjacent guards in a slice do
// not share one.
//
// Lazily allocating containers allocate on first write; initialise them
// before handing them to concurrent readers, or only touch them in Write.
type Guarded[T any] struct {
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		mu sync.RWMutex
		v  unsafe.Pointer
	}{})%CacheLineSize) % CacheLineSize]byte

	mu sync.RWMutex
	v  *T
}

// New returns a guard owning v. The caller must not use v directly
// afterwards.
func New[T any](v *T) *Guarded[T] {
	return &Guarded[T]{v: v}
}

// NewSlice returns n guards, each owning the value returned by newFn.
func NewSlice[T any](n int, newFn func(i int) *T) []Guarded[T] {
	gs := make([]Guarded[T], n)
	for i := range gs {
		gs[i].v = newFn(i)
	}
	return gs
}

// Read calls fn with shared access to the value.
func (g *Guarded[T]) Read(fn func(v *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.v)
}

// Write calls fn with exclusive access to the value.
func (g *Guarded[T]) Write(fn func(v *T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.v)
}

// Swap replaces the owned value, returning the previous one.
func (g *Guarded[T]) Swap(v *T) *T {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := g.v
	g.v = v
	return old
}
