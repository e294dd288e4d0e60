package enumoid

// The methods below satisfy gopkg.in/yaml.v2's Marshaler and Unmarshaler
// interfaces and use the same shapes as the JSON encoding.

// MarshalYAML encodes the set as a sequence of its keys.
func (s *Set[K, B]) MarshalYAML() (interface{}, error) {
	return s.Iter().Collect(), nil
}

// UnmarshalYAML replaces the set with the keys of a sequence.
func (s *Set[K, B]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var keys []K
	if err := unmarshal(&keys); err != nil {
		return err
	}
	return s.decode(keys)
}

// MarshalYAML encodes every key and value as a sequence of entries.
func (m *Map[K, V]) MarshalYAML() (interface{}, error) {
	return collectEntries(m.All()), nil
}

// UnmarshalYAML replaces the map with a sequence of entries covering every
// key.
func (m *Map[K, V]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []Entry[K, V]
	if err := unmarshal(&entries); err != nil {
		return err
	}
	return m.decode(entries)
}

// MarshalYAML encodes the present keys and values as a sequence of entries.
func (m *OptionMap[K, V]) MarshalYAML() (interface{}, error) {
	return collectEntries(m.All()), nil
}

// UnmarshalYAML replaces the map with a sequence of entries.
func (m *OptionMap[K, V]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []Entry[K, V]
	if err := unmarshal(&entries); err != nil {
		return err
	}
	return m.decode(entries)
}

// MarshalYAML encodes the populated keys and values as a sequence of
// entries.
func (v *Vec[K, V]) MarshalYAML() (interface{}, error) {
	return collectEntries(v.All()), nil
}

// UnmarshalYAML replaces the vector with a sequence of entries forming a
// contiguous prefix.
func (v *Vec[K, V]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []Entry[K, V]
	if err := unmarshal(&entries); err != nil {
		return err
	}
	return v.decode(entries)
}
