package cinmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAdd(t *testing.T) {
	m := New()

	m.Add("a1", "a1")
	m.Add("a1", "甲")
	m.Add("a1", "甲")
	m.Add("a1", "")
	m.Add("", "x")

	require.Len(t, m, 1)
	assert.Equal(t, []string{"a1", "甲"}, m["a1"].Sorted())
	assert.Equal(t, 2, m.Pairs())
	assert.Nil(t, m["missing"])
}

func TestMapAddAllCreatesBucket(t *testing.T) {
	m := New()
	m.Add("a", "z")

	m.AddAll("a", setOf("x", "y"))
	m.AddAll("b", setOf("x"))
	m.AddAll("c", setOf())

	assert.Equal(t, []string{"x", "y", "z"}, m["a"].Sorted())
	assert.Equal(t, []string{"x"}, m["b"].Sorted())
	assert.NotContains(t, m, "c")
}

func TestMapKeysSorted(t *testing.T) {
	m := New()
	for _, k := range []string{"tsa2", "a", "ti1tsa2", "ti1", "A"} {
		m.Add(k, "v")
	}

	assert.Equal(t, []string{"A", "a", "ti1", "ti1tsa2", "tsa2"}, m.Keys())
}

func TestMapCloneIsDeep(t *testing.T) {
	m := New()
	m.Add("k", "v1")

	c := m.Clone()
	c.Add("k", "v2")
	c.Add("other", "v")

	assert.Equal(t, []string{"v1"}, m["k"].Sorted())
	assert.NotContains(t, m, "other")
	assert.Equal(t, []string{"v1", "v2"}, c["k"].Sorted())
}

func setOf(candidates ...string) Set {
	s := make(Set, len(candidates))
	for _, c := range candidates {
		s.Add(c)
	}

	return s
}

func TestSetAddDropsEmpty(t *testing.T) {
	s := setOf("", "a", "a", "b")

	assert.Len(t, s, 2)
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(""))
}
