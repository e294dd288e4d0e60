package enumoid

import (
	"fmt"
	"sort"
)

// Compound partitions the word range of a sum-type domain into one
// contiguous sub-range per variant, in declaration order. Variant i owns
// the words [Offset(i), Offset(i)+size_i).
//
//	// type Shape = Circle(Color) | Point | Square(Color)
//	var shapeParts = enumoid.NewCompound(3, 1, 3)
//
//	func (s Shape) IntoWord() uint {
//		return shapeParts.Offset(int(s.tag)) + s.color.IntoWord()
//	}
type Compound struct {
	// offsets[i] is the first word of variant i; the final entry is the
	// total size.
	offsets []uint
}

// NewCompound computes the sub-ranges for variants of the given sizes as a
// running sum. A unit variant has size 1.
func NewCompound(sizes ...int) Compound {
	offsets := make([]uint, len(sizes)+1)
	for i, n := range sizes {
		if n < 0 {
			panic(fmt.Sprintf("enumoid: negative size %d for compound variant %d", n, i))
		}
		offsets[i+1] = offsets[i] + uint(n)
	}
	return Compound{offsets: offsets}
}

// Size returns the total number of keys across all variants.
func (c Compound) Size() int {
	if len(c.offsets) == 0 {
		return 0
	}
	return int(c.offsets[len(c.offsets)-1])
}

// Variants returns the number of variants.
func (c Compound) Variants() int {
	if len(c.offsets) == 0 {
		return 0
	}
	return len(c.offsets) - 1
}

// Offset returns the first word owned by variant v.
func (c Compound) Offset(v int) uint {
	return c.offsets[v]
}

// Range returns the half-open word range [lo, hi) owned by variant v.
func (c Compound) Range(v int) (lo, hi uint) {
	return c.offsets[v], c.offsets[v+1]
}

// Locate returns the variant owning word w and the position of w within
// that variant. It panics if w is outside the compound domain.
func (c Compound) Locate(w uint) (variant int, local uint) {
	n := c.Variants()
	if n == 0 || w >= c.offsets[n] {
		panic(fmt.Sprintf("enumoid: word %d out of bounds for compound of %d keys", w, c.Size()))
	}
	// Empty variants share their offset with the next one; the search
	// always lands on the first variant whose range ends after w.
	variant = sort.Search(n, func(i int) bool { return c.offsets[i+1] > w })
	return variant, w - c.offsets[variant]
}
