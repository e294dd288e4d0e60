package enumoid

import "iter"

// SliceIter walks the populated slots of a Map or Vec, pairing each value
// with its key. It is double-ended and its length is always known.
//
// The front key comes from a running word counter; keys yielded from the
// back are derived from the counter plus the remaining length.
type SliceIter[K any, V any] struct {
	dom  *Domain[K]
	word uint
	rest []V
}

func newSliceIter[K any, V any](dom *Domain[K], data []V) *SliceIter[K, V] {
	return &SliceIter[K, V]{dom: dom, rest: data}
}

// Next returns the next key and a pointer to its value from the front.
func (it *SliceIter[K, V]) Next() (K, *V, bool) {
	if len(it.rest) == 0 {
		var zero K
		return zero, nil, false
	}
	k := it.dom.fromWordUnchecked(it.word)
	v := &it.rest[0]
	it.rest = it.rest[1:]
	it.word++
	return k, v, true
}

// NextBack returns the next key and a pointer to its value from the back.
func (it *SliceIter[K, V]) NextBack() (K, *V, bool) {
	n := len(it.rest)
	if n == 0 {
		var zero K
		return zero, nil, false
	}
	v := &it.rest[n-1]
	it.rest = it.rest[:n-1]
	return it.dom.fromWordUnchecked(it.word + uint(n-1)), v, true
}

// Nth skips n entries and returns the one after them.
func (it *SliceIter[K, V]) Nth(n int) (K, *V, bool) {
	if n >= len(it.rest) {
		it.word += uint(len(it.rest))
		it.rest = it.rest[len(it.rest):]
		var zero K
		return zero, nil, false
	}
	it.word += uint(n)
	it.rest = it.rest[n:]
	return it.Next()
}

// Len returns the number of entries left.
func (it *SliceIter[K, V]) Len() int {
	return len(it.rest)
}

// SizeHint returns exact bounds on the number of entries left.
func (it *SliceIter[K, V]) SizeHint() (lower, upper int) {
	return len(it.rest), len(it.rest)
}

// All drains the iterator from the front as an iter.Seq2.
func (it *SliceIter[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward drains the iterator from the back as an iter.Seq2.
func (it *SliceIter[K, V]) Backward() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for k, v, ok := it.NextBack(); ok; k, v, ok = it.NextBack() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// rangeSlice is the fast path shared by Map.Range and Vec.Range: a single
// pass over the slots with a word counter, no cursor bookkeeping.
func rangeSlice[K any, V any](dom *Domain[K], data []V, f func(K, *V) bool) {
	for w := range data {
		if !f(dom.fromWordUnchecked(uint(w)), &data[w]) {
			return
		}
	}
}
