package enumoid

import "fmt"

// Index is the position of a key of K, always less than the domain size.
type Index[K Enumoid[K]] struct {
	w uint
}

// IndexOf returns the index of k.
func IndexOf[K Enumoid[K]](k K) Index[K] {
	return Index[K]{w: k.IntoWord()}
}

// IndexFromWord returns the index at position w. It panics if w is outside
// the domain.
func IndexFromWord[K Enumoid[K]](w uint) Index[K] {
	if n := domainOf[K]().size; w >= n {
		panic(fmt.Sprintf("enumoid: index %d out of bounds for domain of %d keys", w, n))
	}
	return Index[K]{w: w}
}

// TryIndex returns the index at position w, or false if w is outside the
// domain.
func TryIndex[K Enumoid[K]](w uint) (Index[K], bool) {
	if w >= domainOf[K]().size {
		return Index[K]{}, false
	}
	return Index[K]{w: w}, true
}

func indexUnchecked[K Enumoid[K]](w uint) Index[K] {
	//goland:noinspection ALL
	if enableChecks {
		return IndexFromWord[K](w)
	}
	return Index[K]{w: w}
}

// Word returns the index as a word.
func (i Index[K]) Word() uint { return i.w }

// Int returns the index as an int.
func (i Index[K]) Int() int { return int(i.w) }

// Value returns the key at this index.
func (i Index[K]) Value() K {
	return domainOf[K]().fromWordUnchecked(i.w)
}

// String implements fmt.Stringer.
func (i Index[K]) String() string {
	return fmt.Sprintf("Index(%d)", i.w)
}
