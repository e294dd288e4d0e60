package enumoid

import (
	"fmt"
	"math/bits"
)

// Word is the set of unsigned integer types a domain can use to encode its
// keys and counts.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Enumoid is implemented by key types whose values form a finite, totally
// ordered domain.
//
// EnumDomain must not depend on the receiver: containers reach the domain
// through the zero value of K. IntoWord returns the key's position in the
// domain, which must be less than the domain size.
//
// A typical implementation:
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var colorDomain = enumoid.NewDomain[uint8](3, func(w uint8) Color { return Color(w) })
//
//	func (Color) EnumDomain() *enumoid.Domain[Color] { return colorDomain }
//	func (c Color) IntoWord() uint                     { return uint(c) }
type Enumoid[K any] interface {
	EnumDomain() *Domain[K]
	IntoWord() uint
}

// Domain describes the key space of an enumerable type: its size, the
// width of the word type chosen for it and the inverse of IntoWord.
//
// Domains are created once per key type, normally in a package-level
// variable, with NewDomain.
type Domain[K any] struct {
	size     uint
	wordBits int
	fromWord func(uint) K
}

// NewDomain defines a domain of n keys encoded as words of type W.
// fromWord maps a word in [0, n) back to its key.
//
// W must be able to represent n itself (a Size may equal n), otherwise
// NewDomain panics. Since domains live in package-level variables the
// violation is reported at initialization, before any container exists.
func NewDomain[W Word, K any](n int, fromWord func(W) K) *Domain[K] {
	wordBits := bits.OnesCount64(uint64(^W(0)))
	if n < 0 {
		panic(fmt.Sprintf("enumoid: negative domain size %d", n))
	}
	if uint64(n) > uint64(^W(0)) {
		panic(fmt.Sprintf("enumoid: domain of %d keys does not fit a %d-bit word", n, wordBits))
	}
	if n > 0 && fromWord == nil {
		panic("enumoid: nil fromWord for a non-empty domain")
	}
	return &Domain[K]{
		size:     uint(n),
		wordBits: wordBits,
		fromWord: func(w uint) K { return fromWord(W(w)) },
	}
}

// Size returns the number of keys in the domain.
func (d *Domain[K]) Size() int {
	return int(d.size)
}

// SizeWord returns the number of keys in the domain as a word.
func (d *Domain[K]) SizeWord() uint {
	return d.size
}

// WordBits returns the width of the word type the domain was defined with.
func (d *Domain[K]) WordBits() int {
	return d.wordBits
}

// FromWord returns the key at position w. It panics if w is outside the
// domain.
func (d *Domain[K]) FromWord(w uint) K {
	if w >= d.size {
		panic(fmt.Sprintf("enumoid: word %d out of bounds for domain of %d keys", w, d.size))
	}
	return d.fromWord(w)
}

// TryFromWord returns the key at position w, or false if w is outside the
// domain.
func (d *Domain[K]) TryFromWord(w uint) (K, bool) {
	if w >= d.size {
		var zero K
		return zero, false
	}
	return d.fromWord(w), true
}

// First returns the smallest key, or false for an empty domain.
func (d *Domain[K]) First() (K, bool) {
	return d.TryFromWord(0)
}

// Last returns the largest key, or false for an empty domain.
func (d *Domain[K]) Last() (K, bool) {
	if d.size == 0 {
		var zero K
		return zero, false
	}
	return d.fromWord(d.size - 1), true
}

// fromWordUnchecked decodes a word already known to be inside the domain.
func (d *Domain[K]) fromWordUnchecked(w uint) K {
	//goland:noinspection ALL
	if enableChecks && w >= d.size {
		panic(fmt.Sprintf("enumoid: unchecked word %d out of bounds for domain of %d keys", w, d.size))
	}
	return d.fromWord(w)
}

func domainOf[K Enumoid[K]]() *Domain[K] {
	var zero K
	return zero.EnumDomain()
}

// SizeOf returns the number of keys of K.
func SizeOf[K Enumoid[K]]() int {
	return domainOf[K]().Size()
}

// First returns the smallest key of K. It panics if K has no keys.
func First[K Enumoid[K]]() K {
	k, ok := domainOf[K]().First()
	if !ok {
		panic("enumoid: empty domain has no first key")
	}
	return k
}

// Last returns the largest key of K. It panics if K has no keys.
func Last[K Enumoid[K]]() K {
	k, ok := domainOf[K]().Last()
	if !ok {
		panic("enumoid: empty domain has no last key")
	}
	return k
}

// FromWord returns the key of K at position w. It panics if w is outside
// the domain.
func FromWord[K Enumoid[K]](w uint) K {
	return domainOf[K]().FromWord(w)
}

// TryFromWord returns the key of K at position w, or false if w is outside
// the domain.
func TryFromWord[K Enumoid[K]](w uint) (K, bool) {
	return domainOf[K]().TryFromWord(w)
}

// Next returns the key following k, or false if k is the last key.
func Next[K Enumoid[K]](k K) (K, bool) {
	return FullSize[K]().Next(k)
}

// Prev returns the key preceding k, or false if k is the first key.
func Prev[K Enumoid[K]](k K) (K, bool) {
	return FullSize[K]().Prev(k)
}

// NextWrapped returns the key following k, wrapping to the first key.
func NextWrapped[K Enumoid[K]](k K) K {
	return FullSize[K]().NextWrapped(k)
}

// PrevWrapped returns the key preceding k, wrapping to the last key.
func PrevWrapped[K Enumoid[K]](k K) K {
	return FullSize[K]().PrevWrapped(k)
}

// Keys iterates over every key of K in ascending order.
func Keys[K Enumoid[K]]() *KeyIter[K] {
	return FullSize[K]().Iter()
}

// KeysFrom iterates over the keys from from (inclusive) to the last key.
func KeysFrom[K Enumoid[K]](from K) *KeyIter[K] {
	return FullSize[K]().IterFrom(from)
}

// KeysUntil iterates over the keys from the first key to until (inclusive).
func KeysUntil[K Enumoid[K]](until K) *KeyIter[K] {
	return SizeFromLastKey(until).Iter()
}

// KeysFromUntil iterates over the keys between from and until, both
// inclusive.
func KeysFromUntil[K Enumoid[K]](from, until K) *KeyIter[K] {
	return SizeFromLastKey(until).IterFrom(from)
}
