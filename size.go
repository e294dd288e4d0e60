package enumoid

import (
	"fmt"
	"iter"
)

// Size is a count between 0 and the number of keys of K, inclusive. It is
// the length of a prefix of the domain: a Size of n covers the first n keys.
//
// Unlike Index, a Size may equal the domain size.
type Size[K Enumoid[K]] struct {
	w uint
}

// EmptySize returns the Size covering no keys.
func EmptySize[K Enumoid[K]]() Size[K] {
	return Size[K]{}
}

// FullSize returns the Size covering every key of K.
func FullSize[K Enumoid[K]]() Size[K] {
	return Size[K]{w: domainOf[K]().size}
}

// SizeFromLastKey returns the Size whose last key is k.
func SizeFromLastKey[K Enumoid[K]](k K) Size[K] {
	return Size[K]{w: k.IntoWord() + 1}
}

// SizeFromInt returns the Size covering the first n keys, or false if n is
// negative or larger than the domain.
func SizeFromInt[K Enumoid[K]](n int) (Size[K], bool) {
	if n < 0 || uint(n) > domainOf[K]().size {
		return Size[K]{}, false
	}
	return Size[K]{w: uint(n)}, true
}

// SizeFromWord returns the Size covering the first w keys. It panics if w
// is larger than the domain.
func SizeFromWord[K Enumoid[K]](w uint) Size[K] {
	if n := domainOf[K]().size; w > n {
		panic(fmt.Sprintf("enumoid: size %d out of bounds for domain of %d keys", w, n))
	}
	return Size[K]{w: w}
}

// sizeUnchecked wraps a word already known to be within the domain.
func sizeUnchecked[K Enumoid[K]](w uint) Size[K] {
	//goland:noinspection ALL
	if enableChecks {
		return SizeFromWord[K](w)
	}
	return Size[K]{w: w}
}

// Word returns the size as a word.
func (s Size[K]) Word() uint {
	return s.w
}

// Int returns the size as an int.
func (s Size[K]) Int() int {
	return int(s.w)
}

// IsEmpty reports whether the size covers no keys.
func (s Size[K]) IsEmpty() bool {
	return s.w == 0
}

// IsFull reports whether the size covers every key of K.
func (s Size[K]) IsFull() bool {
	return s.w == domainOf[K]().size
}

// LastKey returns the last key covered by the size, or false if it is
// empty.
func (s Size[K]) LastKey() (K, bool) {
	if s.w == 0 {
		var zero K
		return zero, false
	}
	return domainOf[K]().fromWordUnchecked(s.w - 1), true
}

// Contains reports whether k is covered by the size.
func (s Size[K]) Contains(k K) bool {
	return k.IntoWord() < s.w
}

func (s Size[K]) mustContain(k K) uint {
	w := k.IntoWord()
	if w >= s.w {
		panic(fmt.Sprintf("enumoid: key word %d out of bounds for size %d", w, s.w))
	}
	return w
}

// Next returns the key after k, or false if k is the last key covered.
// It panics if k is not covered by the size.
func (s Size[K]) Next(k K) (K, bool) {
	w := s.mustContain(k) + 1
	if w < s.w {
		return domainOf[K]().fromWordUnchecked(w), true
	}
	var zero K
	return zero, false
}

// Prev returns the key before k, or false if k is the first key.
// It panics if k is not covered by the size.
func (s Size[K]) Prev(k K) (K, bool) {
	w := s.mustContain(k)
	if w > 0 {
		return domainOf[K]().fromWordUnchecked(w - 1), true
	}
	var zero K
	return zero, false
}

// NextWrapped returns the key after k, or the first key if k is the last
// key covered. It panics if k is not covered by the size.
func (s Size[K]) NextWrapped(k K) K {
	w := s.mustContain(k) + 1
	if w == s.w {
		w = 0
	}
	return domainOf[K]().fromWordUnchecked(w)
}

// PrevWrapped returns the key before k, or the last key covered if k is
// the first key. It panics if k is not covered by the size.
func (s Size[K]) PrevWrapped(k K) K {
	w := s.mustContain(k)
	if w == 0 {
		w = s.w
	}
	return domainOf[K]().fromWordUnchecked(w - 1)
}

// Iter iterates over the covered keys in ascending order.
func (s Size[K]) Iter() *KeyIter[K] {
	return newKeyIter(domainOf[K](), 0, s.w)
}

// IterFrom iterates over the covered keys starting at from.
func (s Size[K]) IterFrom(from K) *KeyIter[K] {
	return newKeyIter(domainOf[K](), from.IntoWord(), s.w)
}

// IterUntil iterates over the covered keys up to and including until.
// An until beyond the size is clamped to the last covered key.
func (s Size[K]) IterUntil(until K) *KeyIter[K] {
	return newKeyIter(domainOf[K](), 0, s.clampUntil(until))
}

// IterFromUntil iterates over the covered keys from from up to and
// including until. An until beyond the size is clamped to the last covered
// key.
func (s Size[K]) IterFromUntil(from, until K) *KeyIter[K] {
	return newKeyIter(domainOf[K](), from.IntoWord(), s.clampUntil(until))
}

func (s Size[K]) clampUntil(until K) uint {
	if w := until.IntoWord() + 1; w < s.w {
		return w
	}
	return s.w
}

// String implements fmt.Stringer.
func (s Size[K]) String() string {
	return fmt.Sprintf("Size(%d)", s.w)
}

// KeyIter iterates over a contiguous run of keys. It is double-ended and its
// length is always known.
type KeyIter[K any] struct {
	dom    *Domain[K]
	lo, hi uint
}

func newKeyIter[K any](dom *Domain[K], lo, hi uint) *KeyIter[K] {
	if lo > hi {
		lo = hi
	}
	return &KeyIter[K]{dom: dom, lo: lo, hi: hi}
}

// Next returns the next key from the front.
func (it *KeyIter[K]) Next() (K, bool) {
	if it.lo >= it.hi {
		var zero K
		return zero, false
	}
	k := it.dom.fromWordUnchecked(it.lo)
	it.lo++
	return k, true
}

// NextBack returns the next key from the back.
func (it *KeyIter[K]) NextBack() (K, bool) {
	if it.lo >= it.hi {
		var zero K
		return zero, false
	}
	it.hi--
	return it.dom.fromWordUnchecked(it.hi), true
}

// Len returns the number of keys left.
func (it *KeyIter[K]) Len() int {
	return int(it.hi - it.lo)
}

// SizeHint returns exact lower and upper bounds on the keys left.
func (it *KeyIter[K]) SizeHint() (lower, upper int) {
	n := it.Len()
	return n, n
}

// All drains the iterator from the front as an iter.Seq.
func (it *KeyIter[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, ok := it.Next(); ok; k, ok = it.Next() {
			if !yield(k) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *KeyIter[K]) Collect() []K {
	out := make([]K, 0, it.Len())
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		out = append(out, k)
	}
	return out
}
