package enumoid

import "encoding/json"

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

func marshalJSON(v any) ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(v)
	}
	return json.Marshal(v)
}

func unmarshalJSON(data []byte, v any) error {
	if jsonUnmarshal != nil {
		return jsonUnmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

// MarshalJSON encodes the set as an array of its keys in ascending order.
func (s *Set[K, B]) MarshalJSON() ([]byte, error) {
	return marshalJSON(s.Iter().Collect())
}

// UnmarshalJSON replaces the set with the keys of a JSON array.
func (s *Set[K, B]) UnmarshalJSON(data []byte) error {
	var keys []K
	if err := unmarshalJSON(data, &keys); err != nil {
		return err
	}
	return s.decode(keys)
}

// MarshalJSON encodes every key and value as an array of entries.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return marshalJSON(collectEntries(m.All()))
}

// UnmarshalJSON replaces the map with an array of entries. Every key must
// appear, otherwise the error wraps ErrNotFull.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, V]
	if err := unmarshalJSON(data, &entries); err != nil {
		return err
	}
	return m.decode(entries)
}

// MarshalJSON encodes the present keys and values as an array of entries.
func (m *OptionMap[K, V]) MarshalJSON() ([]byte, error) {
	return marshalJSON(collectEntries(m.All()))
}

// UnmarshalJSON replaces the map with an array of entries.
func (m *OptionMap[K, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, V]
	if err := unmarshalJSON(data, &entries); err != nil {
		return err
	}
	return m.decode(entries)
}

// MarshalJSON encodes the populated keys and values as an array of entries.
func (v *Vec[K, V]) MarshalJSON() ([]byte, error) {
	return marshalJSON(collectEntries(v.All()))
}

// UnmarshalJSON replaces the vector with an array of entries. The keys must
// form a contiguous prefix, otherwise the error wraps ErrNotPrefix.
func (v *Vec[K, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, V]
	if err := unmarshalJSON(data, &entries); err != nil {
		return err
	}
	return v.decode(entries)
}
