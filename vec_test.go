package enumoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec_PushPop(t *testing.T) {
	var v Vec[Three, int]
	assert.True(t, v.IsEmpty())
	_, ok := v.Pop()
	assert.False(t, ok)

	v.Push(10)
	v.Push(20)
	v.Push(30)
	assert.True(t, v.IsFull())
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Size().IsFull())

	x, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 30, x)
	_, ok = v.Get(C)
	assert.False(t, ok)
	x, ok = v.Get(B)
	assert.True(t, ok)
	assert.Equal(t, 20, x)
}

func TestVec_LIFO(t *testing.T) {
	values := []int{5, -1, 7, 7, 0, 42, 3, 9, 11, 2, 8, 1, 6, 4, 13, 14}
	var v Vec[Sixteen, int]
	for _, x := range values {
		require.True(t, v.TryPush(x))
	}
	require.False(t, v.TryPush(99))

	for i := len(values) - 1; i >= 0; i-- {
		x, ok := v.Pop()
		require.True(t, ok)
		require.Equal(t, values[i], x)
	}
	assert.True(t, v.IsEmpty())
}

func TestVec_PushFullPanics(t *testing.T) {
	v := VecFrom[Three](1, 2, 3)
	assert.PanicsWithValue(t,
		"enumoid: index out of bounds: push to full Vec of 3 keys",
		func() { v.Push(4) })
	assert.Panics(t, func() { VecFrom[Three](1, 2, 3, 4) })
	assert.Panics(t, func() { NewVec[Zero, int]().Push(1) })
}

func TestVec_Swap(t *testing.T) {
	v := VecFrom[Three]("a", "b")
	v.Swap(A, B)
	assert.Equal(t, []string{"b", "a"}, v.Slice())
	assert.PanicsWithValue(t,
		"enumoid: index out of bounds: key word 2 beyond Vec length 2",
		func() { v.Swap(A, C) })
}

func TestVec_SwapRemove(t *testing.T) {
	v := VecFrom[Sixteen](1, 2, 3, 4, 5)
	x, ok := v.SwapRemove(1)
	require.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, []int{1, 5, 3, 4}, v.Slice())
	assert.Equal(t, 0, v.data[4])

	_, ok = v.SwapRemove(4)
	assert.False(t, ok)

	x, ok = v.SwapRemove(3)
	require.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, []int{1, 5, 3}, v.Slice())
}

func TestVec_Remove(t *testing.T) {
	v := VecFrom[Sixteen](1, 2, 3, 4, 5)
	x, ok := v.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, []int{1, 3, 4, 5}, v.Slice())
	assert.Equal(t, 0, v.data[4])

	_, ok = v.Remove(4)
	assert.False(t, ok)

	x, ok = v.Remove(3)
	require.True(t, ok)
	assert.Equal(t, 5, x)
	assert.Equal(t, []int{1, 3, 4}, v.Slice())
}

func TestVec_ReleasesSlots(t *testing.T) {
	p := new(int)
	v := VecFrom[Three](p, p, p)
	v.Pop()
	assert.Nil(t, v.data[2])
	v.Clear()
	assert.Equal(t, []*int{nil, nil, nil}, v.data)
	assert.Equal(t, 0, v.Len())
}

func TestVec_GetSet(t *testing.T) {
	v := NewVec[Seven, string]()
	assert.Nil(t, v.Slice())
	assert.Nil(t, v.GetPtr(X(A)))

	v.Push("xa")
	v.Push("xb")
	v.Set(X(B), "XB")
	*v.GetPtr(X(A)) = "XA"
	assert.Equal(t, []string{"XA", "XB"}, v.Slice())
	assert.Panics(t, func() { v.Set(Y, "y") })
	assert.Equal(t, "Vec{X(A):XA X(B):XB}", v.String())
}

func TestVec_NewVecWith(t *testing.T) {
	v := NewVecWith(SizeFromLastKey(Y), func(k Seven) uint { return k.IntoWord() })
	assert.Equal(t, []uint{0, 1, 2, 3}, v.Slice())

	empty := NewVecWith(EmptySize[Seven](), func(Seven) uint {
		t.Fatal("called for an empty size")
		return 0
	})
	assert.True(t, empty.IsEmpty())
}

func TestVec_Iter(t *testing.T) {
	v := VecFrom[Sixteen]("a", "b", "c")

	var keys []Sixteen
	for k, x := range v.Iter().Backward() {
		keys = append(keys, k)
		*x += "!"
	}
	assert.Equal(t, []Sixteen{2, 1, 0}, keys)
	assert.Equal(t, []string{"a!", "b!", "c!"}, v.Slice())

	got := map[Sixteen]string{}
	for k, x := range v.All() {
		got[k] = x
	}
	assert.Equal(t, map[Sixteen]string{0: "a!", 1: "b!", 2: "c!"}, got)

	n := 0
	v.Range(func(Sixteen, *string) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)

	var empty Vec[Sixteen, string]
	assert.Equal(t, 0, empty.Iter().Len())
}

func TestVec_Clone(t *testing.T) {
	v := VecFrom[Three](1, 2)
	c := v.Clone()
	c.Push(3)
	c.Set(A, 10)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, []int{10, 2, 3}, c.Slice())

	var empty Vec[Three, int]
	assert.True(t, empty.Clone().IsEmpty())
}

func TestVec_IntoOptionMap(t *testing.T) {
	v := VecFrom[Three](1, 2)
	m := v.IntoOptionMap()
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.Contains(B))
	assert.False(t, m.Contains(C))
	size, ok := m.IsVec()
	require.True(t, ok)
	assert.Equal(t, 2, size.Int())
	assert.True(t, v.IsEmpty())

	back, err := m.IntoVec()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, back.Slice())
}
