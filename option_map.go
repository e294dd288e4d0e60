package enumoid

import (
	"fmt"
	"iter"
	"strings"
)

// OptionMap is a partial map from keys of K to values of V. It stores N
// slots and a Set recording which of them hold a value.
//
// A slot is only read while its validity bit is set. Releasing a slot
// (removal, overwrite, Clear) resets it to the zero value of V before the
// bit changes, so the map never retains references to removed values.
//
// The zero value is an empty map ready to use. A populated OptionMap has
// the same slot layout as a Map or Vec, so IntoMap and IntoVec hand the
// storage over without copying.
//
// An OptionMap must not be copied after first use; use Clone.
type OptionMap[K Enumoid[K], V any] struct {
	valid Set[K, uint]
	data  []V
}

// NewOptionMap creates an empty map.
func NewOptionMap[K Enumoid[K], V any]() *OptionMap[K, V] {
	return &OptionMap[K, V]{}
}

func (m *OptionMap[K, V]) slots() []V {
	if m.data == nil {
		m.data = make([]V, domainOf[K]().size)
	}
	return m.data
}

func (m *OptionMap[K, V]) getWord(i uint) (V, bool) {
	if !m.valid.containsWord(i) {
		var zero V
		return zero, false
	}
	return m.data[i], true
}

// setWord releases the old value of slot i, if any, then stores value when
// present and finally updates the validity bit.
func (m *OptionMap[K, V]) setWord(i uint, value V, present bool) (old V, had bool) {
	data := m.slots()
	if m.valid.containsWord(i) {
		old, had = data[i], true
		var zero V
		data[i] = zero
	}
	if present {
		data[i] = value
	}
	m.valid.setWord(i, present)
	return old, had
}

// Get returns the value of key, or false if key is absent.
func (m *OptionMap[K, V]) Get(key K) (V, bool) {
	return m.getWord(key.IntoWord())
}

// GetIndex returns the value at index, or false if it is absent.
func (m *OptionMap[K, V]) GetIndex(index Index[K]) (V, bool) {
	return m.getWord(index.w)
}

// GetPtr returns a pointer to the value of key, or nil if key is absent.
func (m *OptionMap[K, V]) GetPtr(key K) *V {
	return m.GetIndexPtr(IndexOf(key))
}

// GetIndexPtr returns a pointer to the value at index, or nil if it is
// absent.
func (m *OptionMap[K, V]) GetIndexPtr(index Index[K]) *V {
	if !m.valid.containsWord(index.w) {
		return nil
	}
	return &m.data[index.w]
}

// Set stores value for key when present is true, or removes key otherwise.
// It returns the previous value and whether there was one.
func (m *OptionMap[K, V]) Set(key K, value V, present bool) (old V, had bool) {
	return m.setWord(key.IntoWord(), value, present)
}

// Insert stores value for key, returning the previous value if any.
func (m *OptionMap[K, V]) Insert(key K, value V) (old V, had bool) {
	return m.setWord(key.IntoWord(), value, true)
}

// InsertIndex stores value at index, returning the previous value if any.
func (m *OptionMap[K, V]) InsertIndex(index Index[K], value V) (old V, had bool) {
	return m.setWord(index.w, value, true)
}

// Remove removes key, returning its value if it was present.
func (m *OptionMap[K, V]) Remove(key K) (old V, had bool) {
	var zero V
	return m.setWord(key.IntoWord(), zero, false)
}

// RemoveIndex removes the value at index, returning it if it was present.
func (m *OptionMap[K, V]) RemoveIndex(index Index[K]) (old V, had bool) {
	var zero V
	return m.setWord(index.w, zero, false)
}

// Contains reports whether key is present.
func (m *OptionMap[K, V]) Contains(key K) bool {
	return m.valid.containsWord(key.IntoWord())
}

// ContainsIndex reports whether a value is present at index.
func (m *OptionMap[K, V]) ContainsIndex(index Index[K]) bool {
	return m.valid.containsWord(index.w)
}

// Swap exchanges the slots of a and b. When only one of them holds a value,
// the value moves to the other key and both presence flags flip.
func (m *OptionMap[K, V]) Swap(a, b K) {
	m.swapWords(a.IntoWord(), b.IntoWord())
}

// SwapIndex exchanges the slots at a and b, moving a lone value across.
func (m *OptionMap[K, V]) SwapIndex(a, b Index[K]) {
	m.swapWords(a.w, b.w)
}

func (m *OptionMap[K, V]) swapWords(i, j uint) {
	vi, vj := m.valid.containsWord(i), m.valid.containsWord(j)
	var zero V
	switch {
	case vi && vj:
		m.data[i], m.data[j] = m.data[j], m.data[i]
	case vi:
		m.data[j], m.data[i] = m.data[i], zero
		m.valid.setWord(i, false)
		m.valid.setWord(j, true)
	case vj:
		m.data[i], m.data[j] = m.data[j], zero
		m.valid.setWord(j, false)
		m.valid.setWord(i, true)
	}
}

// Clear removes every value.
func (m *OptionMap[K, V]) Clear() {
	var zero V
	it := m.valid.IterIndex()
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		m.data[i.w] = zero
	}
	m.valid.Clear()
}

// IsEmpty reports whether no key is present.
func (m *OptionMap[K, V]) IsEmpty() bool {
	return !m.valid.Any()
}

// IsFull reports whether every key is present.
func (m *OptionMap[K, V]) IsFull() bool {
	return m.valid.All()
}

// Count returns the number of keys present.
func (m *OptionMap[K, V]) Count() int {
	return m.valid.Count()
}

// Keys returns a copy of the set of keys present.
func (m *OptionMap[K, V]) Keys() *Set[K, uint] {
	return m.valid.Clone()
}

// IsVec reports whether the present keys form a contiguous prefix of the
// domain, and if so returns its size. An empty map is a prefix of size 0.
func (m *OptionMap[K, V]) IsVec() (Size[K], bool) {
	n := domainOf[K]().size
	seenGap := false
	size := uint(0)
	for w := uint(0); w < n; w++ {
		if m.valid.containsWord(w) {
			if seenGap {
				return Size[K]{}, false
			}
			size = w + 1
		} else {
			seenGap = true
		}
	}
	return sizeUnchecked[K](size), true
}

// IntoMap moves the values into a Map without copying. It fails with a
// *ConversionError wrapping ErrNotFull unless every key is present; on
// failure m is unchanged, on success m is left empty.
func (m *OptionMap[K, V]) IntoMap() (*Map[K, V], error) {
	if !m.IsFull() {
		return nil, &ConversionError{From: "OptionMap", To: "Map", Reason: ErrNotFull}
	}
	out := &Map[K, V]{data: m.slots()}
	m.data = nil
	m.valid.words = nil
	return out, nil
}

// IntoVec moves the values into a Vec without copying. It fails with a
// *ConversionError wrapping ErrNotPrefix unless the present keys form a
// contiguous prefix; on failure m is unchanged, on success m is left empty.
func (m *OptionMap[K, V]) IntoVec() (*Vec[K, V], error) {
	size, ok := m.IsVec()
	if !ok {
		return nil, &ConversionError{From: "OptionMap", To: "Vec", Reason: ErrNotPrefix}
	}
	out := &Vec[K, V]{len: size.w, data: m.slots()}
	m.data = nil
	m.valid.words = nil
	return out, nil
}

// Iter iterates over the present keys and pointers to their values in
// ascending key order.
func (m *OptionMap[K, V]) Iter() *OptionIter[K, V] {
	return &OptionIter[K, V]{
		dom:   domainOf[K](),
		valid: m.valid.IterIndex(),
		rest:  m.data,
	}
}

// All returns the present keys and values as an iter.Seq2.
func (m *OptionMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, *v) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map.
func (m *OptionMap[K, V]) Clone() *OptionMap[K, V] {
	out := &OptionMap[K, V]{valid: *m.valid.Clone()}
	if m.data != nil {
		out.data = make([]V, len(m.data))
		copy(out.data, m.data)
	}
	return out
}

// String implements fmt.Stringer.
func (m *OptionMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("OptionMap{")
	it := m.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		if sb.Len() > len("OptionMap{") {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, *v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// OptionIter walks the present entries of an OptionMap. Positions come from
// the validity set; the slot cursor is advanced by the distance from the
// previous position rather than rescanned.
type OptionIter[K Enumoid[K], V any] struct {
	dom   *Domain[K]
	valid *SetIndexIter[K, uint]
	rest  []V
	// next is the position of rest[0].
	next uint
}

// Next returns the next present key and a pointer to its value.
func (it *OptionIter[K, V]) Next() (K, *V, bool) {
	i, ok := it.valid.Next()
	if !ok {
		var zero K
		return zero, nil, false
	}
	it.rest = it.rest[i.w-it.next:]
	it.next = i.w + 1
	v := &it.rest[0]
	it.rest = it.rest[1:]
	return it.dom.fromWordUnchecked(i.w), v, true
}

// SizeHint returns bounds on the number of entries left.
func (it *OptionIter[K, V]) SizeHint() (lower, upper int) {
	return it.valid.SizeHint()
}
