package enumoid

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestSet_JSON(t *testing.T) {
	s := NewSet[Three, uint8]()
	s.Insert(A)
	s.Insert(C)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["A","C"]`, string(data))

	var got Set[Three, uint8]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, s.Equal(&got))

	empty, err := json.Marshal(NewSet[Three, uint8]())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))
}

func TestSet_JSONOutOfBounds(t *testing.T) {
	var s Set[Sixteen, uint16]
	err := json.Unmarshal([]byte(`[1, 16]`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumoid: decode Set")
	assert.False(t, s.Any(), "failed decode leaves the set untouched")
}

func TestMap_JSON(t *testing.T) {
	m := NewMapWith(func(k Three) int { return int(k) * 10 })

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"A","value":0},{"key":"B","value":10},{"key":"C","value":20}]`, string(data))

	var got Map[Three, int]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.Slice(), got.Slice())
}

func TestMap_JSONMissingKey(t *testing.T) {
	var m Map[Three, int]
	err := json.Unmarshal([]byte(`[{"key":"A","value":1},{"key":"C","value":3}]`), &m)
	require.ErrorIs(t, err, ErrNotFull)
	assert.Nil(t, m.data)
}

func TestOptionMap_JSON(t *testing.T) {
	m := NewOptionMap[Seventeen, string]()
	m.Insert(16, "last")
	m.Insert(2, "two")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":2,"value":"two"},{"key":16,"value":"last"}]`, string(data))

	var got OptionMap[Seventeen, string]
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(collectEntries(m.All()), collectEntries(got.All())); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Repeated keys keep the last value.
	require.NoError(t, json.Unmarshal([]byte(`[{"key":1,"value":"a"},{"key":1,"value":"b"}]`), &got))
	assert.Equal(t, 1, got.Count())
	v, _ := got.Get(1)
	assert.Equal(t, "b", v)
}

func TestVec_JSON(t *testing.T) {
	v := VecFrom[Three](1.5, 2.5)
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"A","value":1.5},{"key":"B","value":2.5}]`, string(data))

	var got Vec[Three, float64]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []float64{1.5, 2.5}, got.Slice())

	// Entry order does not matter as long as the keys form a prefix.
	require.NoError(t, json.Unmarshal([]byte(`[{"key":"B","value":2},{"key":"A","value":1}]`), &got))
	assert.Equal(t, []float64{1, 2}, got.Slice())

	err = json.Unmarshal([]byte(`[{"key":"B","value":2}]`), &got)
	require.ErrorIs(t, err, ErrNotPrefix)
	assert.Equal(t, []float64{1, 2}, got.Slice())
}

func TestContainers_JSONField(t *testing.T) {
	type config struct {
		Enabled Set[Three, uint8]        `json:"enabled"`
		Weights Map[Three, int]          `json:"weights"`
		Labels  OptionMap[Three, string] `json:"labels"`
	}
	var c config
	c.Enabled.Insert(B)
	c.Weights.Set(C, 3)
	c.Labels.Insert(A, "first")

	data, err := json.Marshal(&c)
	require.NoError(t, err)

	var got config
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []Three{B}, got.Enabled.Iter().Collect())
	assert.Equal(t, []int{0, 0, 3}, got.Weights.Slice())
	label, ok := got.Labels.Get(A)
	assert.True(t, ok)
	assert.Equal(t, "first", label)
}

func TestSetDefaultJSONMarshal(t *testing.T) {
	var marshals, unmarshals int
	SetDefaultJSONMarshal(
		func(v any) ([]byte, error) {
			marshals++
			return json.Marshal(v)
		},
		func(data []byte, v any) error {
			unmarshals++
			return json.Unmarshal(data, v)
		},
	)
	defer SetDefaultJSONMarshal(nil, nil)

	s := NewSetAll[Three, uint8]()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var got Set[Three, uint8]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.All())
	assert.Equal(t, 1, marshals)
	assert.Equal(t, 1, unmarshals)
}

func TestContainers_YAML(t *testing.T) {
	s := NewSet[Sixteen, uint8]()
	s.Insert(3)
	s.Insert(9)
	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "- 3\n- 9\n", string(data))
	var gotSet Set[Sixteen, uint8]
	require.NoError(t, yaml.Unmarshal(data, &gotSet))
	assert.True(t, s.Equal(&gotSet))

	om := NewOptionMap[Sixteen, string]()
	om.Insert(4, "four")
	data, err = yaml.Marshal(om)
	require.NoError(t, err)
	assert.Equal(t, "- key: 4\n  value: four\n", string(data))
	var gotOM OptionMap[Sixteen, string]
	require.NoError(t, yaml.Unmarshal(data, &gotOM))
	v, ok := gotOM.Get(4)
	assert.True(t, ok)
	assert.Equal(t, "four", v)

	vec := VecFrom[Sixteen]("x", "y")
	data, err = yaml.Marshal(vec)
	require.NoError(t, err)
	var gotVec Vec[Sixteen, string]
	require.NoError(t, yaml.Unmarshal(data, &gotVec))
	assert.Equal(t, []string{"x", "y"}, gotVec.Slice())

	m := NewMapWith(func(k Sixteen) int { return int(k) })
	data, err = yaml.Marshal(m)
	require.NoError(t, err)
	var gotMap Map[Sixteen, int]
	require.NoError(t, yaml.Unmarshal(data, &gotMap))
	assert.Equal(t, m.Slice(), gotMap.Slice())
}

func TestContainers_YAMLErrors(t *testing.T) {
	var m Map[Sixteen, int]
	err := yaml.Unmarshal([]byte("- key: 0\n  value: 1\n"), &m)
	require.ErrorIs(t, err, ErrNotFull)

	var v Vec[Sixteen, int]
	err = yaml.Unmarshal([]byte("- key: 1\n  value: 1\n"), &v)
	require.ErrorIs(t, err, ErrNotPrefix)

	var s Set[Sixteen, uint8]
	err = yaml.Unmarshal([]byte("[20]"), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}
