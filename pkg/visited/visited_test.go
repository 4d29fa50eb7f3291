package visited

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	Name string
}

func TestKeyOfComparesByIdentity(t *testing.T) {
	a := &node{Name: "same"}
	b := &node{Name: "same"}

	ka, ok := KeyOf(reflect.ValueOf(a))
	require.True(t, ok)
	kb, ok := KeyOf(reflect.ValueOf(b))
	require.True(t, ok)
	again, _ := KeyOf(reflect.ValueOf(a))

	assert.NotEqual(t, ka, kb)
	assert.Equal(t, ka, again)
}

func TestKeyOfWithoutIdentity(t *testing.T) {
	var nilPtr *node
	values := []interface{}{node{}, 42, "text", []int{1}, map[string]int{"a": 1}, nilPtr}

	for _, v := range values {
		_, ok := KeyOf(reflect.ValueOf(v))
		assert.False(t, ok, "%T should have no identity", v)
	}
}

func TestKeyOfDistinguishesClosures(t *testing.T) {
	makeCounter := func(start int) func() int {
		return func() int { start++; return start }
	}
	first := makeCounter(0)
	second := makeCounter(0)

	k1, ok := KeyOf(reflect.ValueOf(first))
	require.True(t, ok)
	k2, _ := KeyOf(reflect.ValueOf(second))
	k1again, _ := KeyOf(reflect.ValueOf(first))

	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, k1again)
}

func TestSet(t *testing.T) {
	s := New()
	a, b := &node{Name: "a"}, &node{Name: "b"}
	k, _ := KeyOf(reflect.ValueOf(a))
	other, _ := KeyOf(reflect.ValueOf(b))

	id := s.ID(k)
	assert.Equal(t, "vd-1", id)
	assert.False(t, s.Contains(k), "assigning an id must not mark as visited")

	s.Record(k)
	assert.True(t, s.Contains(k))
	assert.False(t, s.Contains(other))
	assert.Equal(t, id, s.ID(k))
	assert.Equal(t, "vd-2", s.ID(other))
	assert.Equal(t, "vd-3", s.Fresh())
	assert.Equal(t, 1, s.Len())
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}
