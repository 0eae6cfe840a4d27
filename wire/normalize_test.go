package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColor string

func (c testColor) Token() string { return string(c) }

type testChild struct {
	Name *string
}

func (c testChild) Fields() []Field {
	return []Field{{Name: "name", Value: Opt(c.Name)}}
}

type testParent struct {
	ID       *int
	Color    *testColor
	Children []testChild
	Extra    Payload
}

func (p testParent) Fields() []Field {
	return []Field{
		{Name: "id", Value: Opt(p.ID)},
		{Name: "color", Value: Opt(p.Color)},
		{Name: "children", Value: Records(p.Children)},
		{Name: "extra", Value: p.Extra},
	}
}

func TestNormalize_RecordToOrderedMap(t *testing.T) {
	id := 7
	color := testColor("RED")
	name := "a"
	p := testParent{
		ID:       &id,
		Color:    &color,
		Children: []testChild{{Name: &name}},
	}

	out := Normalize(p)
	m, ok := out.(*Map)
	require.True(t, ok)
	assert.Equal(t, []string{"id", "color", "children", "extra"}, m.Keys())

	color2, _ := m.Get("color")
	assert.Equal(t, "RED", color2)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"color":"RED","children":[{"name":"a"}],"extra":null}`, string(data))
	// Key order is part of the canonical form.
	assert.Equal(t, `{"id":7,"color":"RED","children":[{"name":"a"}],"extra":null}`, string(data))
}

func TestNormalize_AbsentFieldsAreExplicitNulls(t *testing.T) {
	out := Normalize(testParent{})
	m := out.(*Map)

	for _, k := range []string{"id", "color", "children", "extra"} {
		v, ok := m.Get(k)
		assert.True(t, ok, k)
		assert.Nil(t, v, k)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	id := 3
	p := testParent{ID: &id, Extra: Payload{"nested": map[string]any{"k": "v"}}}

	once := Normalize(p)
	twice := Normalize(once)

	a, err := json.Marshal(once)
	require.NoError(t, err)
	b, err := json.Marshal(twice)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRecords_NilVersusEmpty(t *testing.T) {
	assert.Nil(t, Records[testChild](nil))

	out := Records([]testChild{})
	require.NotNil(t, out)
	assert.Len(t, out.([]any), 0)
}

func TestOpt(t *testing.T) {
	assert.Nil(t, Opt[string](nil))

	s := "x"
	assert.Equal(t, "x", Opt(&s))
}

func TestMap_SetKeepsFirstPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}

func TestNormalize_TypedSlicesAreOutsideTheClosedSet(t *testing.T) {
	name := "a"
	typed := []testChild{{Name: &name}}

	// Only the []any shape is walked; a typed slice must go through
	// Records first.
	out := Normalize(typed)
	assert.Equal(t, typed, out)

	walked := Normalize(Records(typed)).([]any)
	require.Len(t, walked, 1)
	m, ok := walked[0].(*Map)
	require.True(t, ok)
	v, _ := m.Get("name")
	assert.Equal(t, "a", v)
}

func TestNormalize_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, 42, Normalize(42))
	assert.Equal(t, "s", Normalize("s"))
	assert.Equal(t, true, Normalize(true))
	assert.Nil(t, Normalize(nil))
}
