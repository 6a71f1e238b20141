package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(pairs map[string][]string) *Map {
	m := NewMap()
	for k, vs := range pairs {
		m.Add(k, vs...)
	}
	return m
}

func TestMap_AddAndLookup(t *testing.T) {
	m := NewMap()
	m.Add("study", "学习", "學習")
	m.Add("study", "学习")
	m.Add("", "ignored")
	m.Add("learn", "", "  ")

	assert.Equal(t, []string{"学习", "學習"}, m.Lookup("study"))
	assert.Nil(t, m.Lookup("learn"))
	assert.False(t, m.Has("learn"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"study"}, m.Keys())
}

func TestMerge_Idempotent(t *testing.T) {
	m := newTestMap(map[string][]string{
		"study": {"学习"},
		"hello": {"你好", "您好"},
	})

	merged := Merge(m, m)
	assert.True(t, merged.Equal(m), "merge(M, M) must equal M")
	assert.True(t, m.Equal(merged))
}

func TestMerge_Commutative(t *testing.T) {
	a := newTestMap(map[string][]string{
		"study": {"学习"},
		"learn": {"学"},
	})
	b := newTestMap(map[string][]string{
		"study": {"讀書"},
		"hello": {"你好"},
	})

	ab := Merge(a, b)
	ba := Merge(b, a)
	require.True(t, ab.Equal(ba), "merge must be order independent")
	assert.Equal(t, []string{"学习", "讀書"}, ab.Lookup("study"))
	assert.Equal(t, 3, ab.Len())
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := newTestMap(map[string][]string{"a": {"甲"}})
	b := newTestMap(map[string][]string{"a": {"乙"}})

	_ = Merge(a, b, nil)

	assert.Equal(t, []string{"甲"}, a.Lookup("a"))
	assert.Equal(t, []string{"乙"}, b.Lookup("a"))
}

func TestMap_Equal(t *testing.T) {
	a := newTestMap(map[string][]string{"x": {"1", "2"}})

	assert.False(t, a.Equal(newTestMap(map[string][]string{"x": {"1"}})))
	assert.False(t, a.Equal(newTestMap(map[string][]string{"y": {"1", "2"}})))
	assert.False(t, a.Equal(newTestMap(map[string][]string{"x": {"1", "3"}})))
	assert.True(t, a.Equal(newTestMap(map[string][]string{"x": {"2", "1"}})))
}
