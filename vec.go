package enumoid

import (
	"fmt"
	"iter"
	"strings"
)

// Vec is a vector of at most N values indexed by keys of K. The first Len
// keys hold values; the remaining slots hold the zero value of V.
//
// The zero value is an empty vector ready to use. Storage of N slots is
// allocated on the first push.
//
// A Vec must not be copied after first use; use Clone.
type Vec[K Enumoid[K], V any] struct {
	len  uint
	data []V
}

// NewVec creates an empty vector.
func NewVec[K Enumoid[K], V any]() *Vec[K, V] {
	return &Vec[K, V]{}
}

// NewVecWith creates a vector of the given size holding f(k) for every
// covered key k, called in ascending key order.
func NewVecWith[K Enumoid[K], V any](size Size[K], f func(K) V) *Vec[K, V] {
	v := &Vec[K, V]{}
	it := size.Iter()
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		v.Push(f(k))
	}
	return v
}

// VecFrom creates a vector holding values in order. It panics if there are
// more values than keys.
func VecFrom[K Enumoid[K], V any](values ...V) *Vec[K, V] {
	v := &Vec[K, V]{}
	for _, x := range values {
		v.Push(x)
	}
	return v
}

func (v *Vec[K, V]) slots() []V {
	if v.data == nil {
		v.data = make([]V, domainOf[K]().size)
	}
	return v.data
}

// Len returns the number of values.
func (v *Vec[K, V]) Len() int {
	return int(v.len)
}

// Size returns the number of values as a Size.
func (v *Vec[K, V]) Size() Size[K] {
	return sizeUnchecked[K](v.len)
}

// IsEmpty reports whether the vector holds no values.
func (v *Vec[K, V]) IsEmpty() bool {
	return v.len == 0
}

// IsFull reports whether every key holds a value.
func (v *Vec[K, V]) IsFull() bool {
	return v.len == domainOf[K]().size
}

// Push appends value at the next key. It panics if the vector is full.
func (v *Vec[K, V]) Push(value V) {
	if !v.TryPush(value) {
		panic(fmt.Sprintf("enumoid: index out of bounds: push to full Vec of %d keys", v.len))
	}
}

// TryPush appends value at the next key, or reports false if the vector is
// full.
func (v *Vec[K, V]) TryPush(value V) bool {
	if v.len == domainOf[K]().size {
		return false
	}
	v.slots()[v.len] = value
	v.len++
	return true
}

// Pop removes and returns the last value, or false if the vector is empty.
func (v *Vec[K, V]) Pop() (V, bool) {
	var zero V
	if v.len == 0 {
		return zero, false
	}
	v.len--
	value := v.data[v.len]
	v.data[v.len] = zero
	return value, true
}

// SwapRemove removes and returns the value of key, moving the last value
// into its place. It does not preserve order. It returns false if key is
// beyond the length.
func (v *Vec[K, V]) SwapRemove(key K) (V, bool) {
	var zero V
	i := key.IntoWord()
	if i >= v.len {
		return zero, false
	}
	last := v.len - 1
	value := v.data[i]
	v.data[i] = v.data[last]
	v.data[last] = zero
	v.len = last
	return value, true
}

// Remove removes and returns the value of key, shifting the following
// values down by one. It preserves order. It returns false if key is
// beyond the length.
func (v *Vec[K, V]) Remove(key K) (V, bool) {
	var zero V
	i := key.IntoWord()
	if i >= v.len {
		return zero, false
	}
	value := v.data[i]
	copy(v.data[i:v.len-1], v.data[i+1:v.len])
	v.len--
	v.data[v.len] = zero
	return value, true
}

func (v *Vec[K, V]) mustHold(key K) uint {
	i := key.IntoWord()
	if i >= v.len {
		panic(fmt.Sprintf("enumoid: index out of bounds: key word %d beyond Vec length %d", i, v.len))
	}
	return i
}

// Swap exchanges the values of a and b. It panics if either key is beyond
// the length.
func (v *Vec[K, V]) Swap(a, b K) {
	i, j := v.mustHold(a), v.mustHold(b)
	v.data[i], v.data[j] = v.data[j], v.data[i]
}

// Get returns the value of key, or false if key is beyond the length.
func (v *Vec[K, V]) Get(key K) (V, bool) {
	i := key.IntoWord()
	if i >= v.len {
		var zero V
		return zero, false
	}
	return v.data[i], true
}

// GetPtr returns a pointer to the value of key, or nil if key is beyond the
// length.
func (v *Vec[K, V]) GetPtr(key K) *V {
	i := key.IntoWord()
	if i >= v.len {
		return nil
	}
	return &v.data[i]
}

// Set replaces the value of key. It panics if key is beyond the length.
func (v *Vec[K, V]) Set(key K, value V) {
	v.data[v.mustHold(key)] = value
}

// Clear removes every value.
func (v *Vec[K, V]) Clear() {
	if v.data != nil {
		clear(v.data[:v.len])
	}
	v.len = 0
}

// Slice returns the values in key order. Writes through the slice update
// the vector.
func (v *Vec[K, V]) Slice() []V {
	if v.data == nil {
		return nil
	}
	return v.data[:v.len]
}

// Iter iterates over the populated keys and pointers to their values.
func (v *Vec[K, V]) Iter() *SliceIter[K, V] {
	return newSliceIter(domainOf[K](), v.Slice())
}

// Range calls f for every populated key and a pointer to its value in
// ascending key order, stopping early if f returns false.
func (v *Vec[K, V]) Range(f func(key K, value *V) bool) {
	rangeSlice(domainOf[K](), v.Slice(), f)
}

// All returns the populated keys and values as an iter.Seq2.
func (v *Vec[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		v.Range(func(k K, x *V) bool { return yield(k, *x) })
	}
}

// Clone returns a shallow copy of the vector.
func (v *Vec[K, V]) Clone() *Vec[K, V] {
	out := &Vec[K, V]{len: v.len}
	if v.data != nil {
		out.data = make([]V, len(v.data))
		copy(out.data, v.data[:v.len])
	}
	return out
}

// IntoOptionMap moves the values into an OptionMap holding the populated
// keys, without copying. v is left empty.
func (v *Vec[K, V]) IntoOptionMap() *OptionMap[K, V] {
	om := &OptionMap[K, V]{data: v.data}
	for w := uint(0); w < v.len; w++ {
		om.valid.setWord(w, true)
	}
	v.data = nil
	v.len = 0
	return om
}

// String implements fmt.Stringer.
func (v *Vec[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Vec{")
	v.Range(func(k K, x *V) bool {
		if sb.Len() > len("Vec{") {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, *x)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
