package enumoid

import (
	"iter"

	"github.com/pkg/errors"
)

// Entry is the serialized form of one key and its value. Map, Vec and
// OptionMap encode as a sequence of entries in ascending key order.
type Entry[K any, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

func checkDecodedKey[K Enumoid[K]](k K) error {
	if w, n := k.IntoWord(), domainOf[K]().size; w >= n {
		return errors.Errorf("enumoid: decoded key word %d out of bounds for domain of %d keys", w, n)
	}
	return nil
}

func collectEntries[K any, V any](all iter.Seq2[K, V]) []Entry[K, V] {
	out := []Entry[K, V]{}
	all(func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out
}

// replayEntries rebuilds a partial map by inserting every entry in order;
// a repeated key keeps its last value.
func replayEntries[K Enumoid[K], V any](entries []Entry[K, V]) (*OptionMap[K, V], error) {
	m := NewOptionMap[K, V]()
	for _, e := range entries {
		if err := checkDecodedKey(e.Key); err != nil {
			return nil, err
		}
		m.Insert(e.Key, e.Value)
	}
	return m, nil
}

func replayKeys[K Enumoid[K], B BitWord](keys []K) (*Set[K, B], error) {
	s := NewSet[K, B]()
	for _, k := range keys {
		if err := checkDecodedKey(k); err != nil {
			return nil, err
		}
		s.Set(k, true)
	}
	return s, nil
}

func (s *Set[K, B]) decode(keys []K) error {
	out, err := replayKeys[K, B](keys)
	if err != nil {
		return errors.Wrap(err, "enumoid: decode Set")
	}
	*s = *out
	return nil
}

func (m *Map[K, V]) decode(entries []Entry[K, V]) error {
	om, err := replayEntries(entries)
	if err != nil {
		return errors.Wrap(err, "enumoid: decode Map")
	}
	out, err := om.IntoMap()
	if err != nil {
		return errors.Wrap(err, "enumoid: decode Map")
	}
	*m = *out
	return nil
}

func (m *OptionMap[K, V]) decode(entries []Entry[K, V]) error {
	out, err := replayEntries(entries)
	if err != nil {
		return errors.Wrap(err, "enumoid: decode OptionMap")
	}
	*m = *out
	return nil
}

func (v *Vec[K, V]) decode(entries []Entry[K, V]) error {
	om, err := replayEntries(entries)
	if err != nil {
		return errors.Wrap(err, "enumoid: decode Vec")
	}
	out, err := om.IntoVec()
	if err != nil {
		return errors.Wrap(err, "enumoid: decode Vec")
	}
	*v = *out
	return nil
}
