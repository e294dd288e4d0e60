package enumoid

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a total map from every key of K to a value of V, stored as a
// dense array of N values.
//
// The zero value maps every key to the zero value of V. Storage is
// allocated on first mutable access.
//
// A Map must not be copied after first use; use Clone.
type Map[K Enumoid[K], V any] struct {
	data []V
}

// NewMap creates a map holding the zero value of V for every key.
func NewMap[K Enumoid[K], V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.slots()
	return m
}

// NewMapWith creates a map holding f(k) for every key k. f is called
// exactly once per key, in ascending key order.
func NewMapWith[K Enumoid[K], V any](f func(K) V) *Map[K, V] {
	dom := domainOf[K]()
	data := make([]V, dom.size)
	for w := range data {
		data[w] = f(dom.fromWordUnchecked(uint(w)))
	}
	return &Map[K, V]{data: data}
}

func (m *Map[K, V]) slots() []V {
	if m.data == nil {
		m.data = make([]V, domainOf[K]().size)
	}
	return m.data
}

// Len returns the number of keys, which is always the domain size.
func (m *Map[K, V]) Len() int {
	return SizeOf[K]()
}

// Get returns the value of key.
func (m *Map[K, V]) Get(key K) V {
	return m.GetIndex(IndexOf(key))
}

// GetIndex returns the value at index.
func (m *Map[K, V]) GetIndex(index Index[K]) V {
	if m.data == nil {
		if n := domainOf[K]().size; index.w >= n {
			panic(fmt.Sprintf("enumoid: index %d out of bounds for domain of %d keys", index.w, n))
		}
		var zero V
		return zero
	}
	return m.data[index.w]
}

// GetPtr returns a pointer to the value of key.
func (m *Map[K, V]) GetPtr(key K) *V {
	return &m.slots()[key.IntoWord()]
}

// GetIndexPtr returns a pointer to the value at index.
func (m *Map[K, V]) GetIndexPtr(index Index[K]) *V {
	return &m.slots()[index.w]
}

// Set replaces the value of key.
func (m *Map[K, V]) Set(key K, value V) {
	m.slots()[key.IntoWord()] = value
}

// SetIndex replaces the value at index.
func (m *Map[K, V]) SetIndex(index Index[K], value V) {
	m.slots()[index.w] = value
}

// Swap exchanges the values of a and b.
func (m *Map[K, V]) Swap(a, b K) {
	m.swapWords(a.IntoWord(), b.IntoWord())
}

// SwapIndex exchanges the values at a and b.
func (m *Map[K, V]) SwapIndex(a, b Index[K]) {
	m.swapWords(a.w, b.w)
}

func (m *Map[K, V]) swapWords(i, j uint) {
	data := m.slots()
	data[i], data[j] = data[j], data[i]
}

// Slice returns the values in key order. Writes through the slice update
// the map.
func (m *Map[K, V]) Slice() []V {
	return m.slots()
}

// Iter iterates over every key and a pointer to its value.
func (m *Map[K, V]) Iter() *SliceIter[K, V] {
	return newSliceIter(domainOf[K](), m.slots())
}

// Range calls f for every key and a pointer to its value in ascending key
// order, stopping early if f returns false.
func (m *Map[K, V]) Range(f func(key K, value *V) bool) {
	rangeSlice(domainOf[K](), m.slots(), f)
}

// All returns every key and value as an iter.Seq2.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Range(func(k K, v *V) bool { return yield(k, *v) })
	}
}

// Clone returns a shallow copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m.data == nil {
		return &Map[K, V]{}
	}
	data := make([]V, len(m.data))
	copy(data, m.data)
	return &Map[K, V]{data: data}
}

// IntoOptionMap moves the values into an OptionMap with every key present,
// without copying. m is left as a fresh zero-valued map.
func (m *Map[K, V]) IntoOptionMap() *OptionMap[K, V] {
	om := &OptionMap[K, V]{data: m.slots()}
	om.valid.fill()
	m.data = nil
	return om
}

// String implements fmt.Stringer.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Map{")
	m.Range(func(k K, v *V) bool {
		if sb.Len() > len("Map{") {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, *v)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
