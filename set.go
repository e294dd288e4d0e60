package enumoid

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// BitWord is the set of unsigned integer types a Set can pack its bits
// into. The choice is independent of the domain's own word type.
type BitWord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Set is a set of keys of K packed into words of type B, one bit per key.
//
// The zero value is an empty set ready to use. Storage of ⌈N/W⌉ words is
// allocated on the first write. Bits at positions at or beyond the domain
// size are always zero.
//
// A Set must not be copied after first use; use Clone.
type Set[K Enumoid[K], B BitWord] struct {
	words []B
}

// NewSet creates an empty set.
func NewSet[K Enumoid[K], B BitWord]() *Set[K, B] {
	return &Set[K, B]{}
}

// NewSetAll creates a set containing every key of K.
func NewSetAll[K Enumoid[K], B BitWord]() *Set[K, B] {
	s := &Set[K, B]{}
	s.fill()
	return s
}

func bitWidth[B BitWord]() uint {
	return uint(bits.OnesCount64(uint64(^B(0))))
}

// lastWordMask returns the mask of the rem low bits valid in a partial
// final word, 0 < rem < W.
func lastWordMask[B BitWord](rem uint) B {
	return ^B(0) >> (bitWidth[B]() - rem)
}

func (s *Set[K, B]) init() []B {
	if s.words == nil {
		n, w := domainOf[K]().size, bitWidth[B]()
		s.words = make([]B, (n+w-1)/w)
	}
	return s.words
}

func (s *Set[K, B]) fill() {
	words := s.init()
	n, w := domainOf[K]().size, bitWidth[B]()
	full := n / w
	for i := range words[:full] {
		words[i] = ^B(0)
	}
	if rem := n % w; rem != 0 {
		words[full] = lastWordMask[B](rem)
	}
}

func (s *Set[K, B]) setWord(i uint, flag bool) {
	if n := domainOf[K]().size; i >= n {
		panic(fmt.Sprintf("enumoid: index %d out of bounds for domain of %d keys", i, n))
	}
	words := s.init()
	w := bitWidth[B]()
	mask := B(1) << (i % w)
	if flag {
		words[i/w] |= mask
	} else {
		words[i/w] &^= mask
	}
}

func (s *Set[K, B]) containsWord(i uint) bool {
	if s.words == nil {
		return false
	}
	w := bitWidth[B]()
	return (s.words[i/w]>>(i%w))&1 != 0
}

// Set sets whether key is in the set.
func (s *Set[K, B]) Set(key K, flag bool) {
	s.setWord(key.IntoWord(), flag)
}

// SetIndex sets whether the key at index is in the set.
func (s *Set[K, B]) SetIndex(index Index[K], flag bool) {
	s.setWord(index.w, flag)
}

// Insert adds key to the set and reports whether it was already present.
func (s *Set[K, B]) Insert(key K) bool {
	i := key.IntoWord()
	had := s.containsWord(i)
	s.setWord(i, true)
	return had
}

// InsertIndex adds the key at index and reports whether it was already
// present.
func (s *Set[K, B]) InsertIndex(index Index[K]) bool {
	had := s.containsWord(index.w)
	s.setWord(index.w, true)
	return had
}

// Remove removes key from the set and reports whether it was present.
func (s *Set[K, B]) Remove(key K) bool {
	i := key.IntoWord()
	had := s.containsWord(i)
	s.setWord(i, false)
	return had
}

// RemoveIndex removes the key at index and reports whether it was present.
func (s *Set[K, B]) RemoveIndex(index Index[K]) bool {
	had := s.containsWord(index.w)
	s.setWord(index.w, false)
	return had
}

// Get reports whether key is in the set.
func (s *Set[K, B]) Get(key K) bool {
	return s.containsWord(key.IntoWord())
}

// Contains reports whether key is in the set.
func (s *Set[K, B]) Contains(key K) bool {
	return s.containsWord(key.IntoWord())
}

// ContainsIndex reports whether the key at index is in the set.
func (s *Set[K, B]) ContainsIndex(index Index[K]) bool {
	return s.containsWord(index.w)
}

// Clear removes every key from the set.
func (s *Set[K, B]) Clear() {
	clear(s.words)
}

// Count returns the number of keys in the set.
func (s *Set[K, B]) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// Any reports whether the set has at least one key.
func (s *Set[K, B]) Any() bool {
	for _, w := range s.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// All reports whether the set contains every key of K.
func (s *Set[K, B]) All() bool {
	n, w := domainOf[K]().size, bitWidth[B]()
	if s.words == nil {
		return n == 0
	}
	full := n / w
	for _, word := range s.words[:full] {
		if word != ^B(0) {
			return false
		}
	}
	rem := n % w
	return rem == 0 || s.words[full] == lastWordMask[B](rem)
}

// Equal reports whether both sets hold the same keys.
func (s *Set[K, B]) Equal(other *Set[K, B]) bool {
	a, b := s.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, w := range a {
		var o B
		if i < len(b) {
			o = b[i]
		}
		if w != o {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s *Set[K, B]) Clone() *Set[K, B] {
	if s.words == nil {
		return &Set[K, B]{}
	}
	words := make([]B, len(s.words))
	copy(words, s.words)
	return &Set[K, B]{words: words}
}

// IterIndex iterates over the indices of the keys in the set in ascending
// order. The set must not be modified while iterating.
func (s *Set[K, B]) IterIndex() *SetIndexIter[K, B] {
	it := &SetIndexIter[K, B]{words: s.words, n: domainOf[K]().size}
	if len(s.words) > 0 {
		it.current = s.words[0]
	}
	return it
}

// Iter iterates over the keys in the set in ascending order. The set must
// not be modified while iterating.
func (s *Set[K, B]) Iter() *SetIter[K, B] {
	return &SetIter[K, B]{dom: domainOf[K](), inner: s.IterIndex()}
}

// Members returns the keys in the set as an iter.Seq.
func (s *Set[K, B]) Members() iter.Seq[K] {
	return s.Iter().All()
}

// String implements fmt.Stringer.
func (s *Set[K, B]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := s.Iter()
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
	}
	sb.WriteByte('}')
	return sb.String()
}

// SetIndexIter yields the indices of the keys in a Set in ascending order.
//
// It drains one word at a time: the lowest set bit of the current word
// gives the next position, and is then cleared with w &= w-1.
type SetIndexIter[K Enumoid[K], B BitWord] struct {
	words     []B
	n         uint
	wordIndex int
	current   B
}

// Next returns the next index in the set.
func (it *SetIndexIter[K, B]) Next() (Index[K], bool) {
	for it.current == 0 {
		it.wordIndex++
		if it.wordIndex >= len(it.words) {
			return Index[K]{}, false
		}
		it.current = it.words[it.wordIndex]
	}
	pos := uint(it.wordIndex)*bitWidth[B]() + uint(bits.TrailingZeros64(uint64(it.current)))
	it.current &= it.current - 1
	return indexUnchecked[K](pos), true
}

// SizeHint returns bounds on the number of indices left. The lower bound
// counts the bits left in the current word; the upper bound adds the
// capacity of every word after it.
func (it *SetIndexIter[K, B]) SizeHint() (lower, upper int) {
	cur := uint(bits.OnesCount64(uint64(it.current)))
	eff := uint(it.wordIndex)
	if cur > 0 {
		eff++
	}
	rest := uint(0)
	if used := eff * bitWidth[B](); used < it.n {
		rest = it.n - used
	}
	return int(cur), int(rest + cur)
}

// SetIter yields the keys in a Set in ascending order.
type SetIter[K Enumoid[K], B BitWord] struct {
	dom   *Domain[K]
	inner *SetIndexIter[K, B]
}

// Next returns the next key in the set.
func (it *SetIter[K, B]) Next() (K, bool) {
	i, ok := it.inner.Next()
	if !ok {
		var zero K
		return zero, false
	}
	return it.dom.fromWordUnchecked(i.w), true
}

// SizeHint returns bounds on the number of keys left.
func (it *SetIter[K, B]) SizeHint() (lower, upper int) {
	return it.inner.SizeHint()
}

// All drains the iterator as an iter.Seq.
func (it *SetIter[K, B]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, ok := it.Next(); ok; k, ok = it.Next() {
			if !yield(k) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *SetIter[K, B]) Collect() []K {
	lower, _ := it.SizeHint()
	out := make([]K, 0, lower)
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		out = append(out, k)
	}
	return out
}
