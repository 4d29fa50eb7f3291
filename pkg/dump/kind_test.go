package dump

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	n := 1
	pn := &n
	var nilMap map[string]int
	var iface interface{} = &point{}

	tests := []struct {
		name  string
		value interface{}
		want  Kind
	}{
		{"invalid", nil, KindNull},
		{"nil_pointer", (*point)(nil), KindNull},
		{"nil_func", (func())(nil), KindNull},
		{"bool", true, KindBool},
		{"int", 1, KindNumber},
		{"uintptr", uintptr(1), KindNumber},
		{"complex", complex(1, 2), KindNumber},
		{"pointer_chain", &pn, KindNumber},
		{"string", "s", KindText},
		{"slice", []int{1}, KindContainer},
		{"array", [2]int{}, KindContainer},
		{"nil_map", nilMap, KindContainer},
		{"ordered_map", NewOrderedMap(), KindContainer},
		{"struct", point{}, KindObject},
		{"pointer_to_struct", &point{}, KindObject},
		{"interface_pointer", &iface, KindObject},
		{"time", time.Time{}, KindObject},
		{"func", func() {}, KindCallable},
		{"callable_struct", scriptFn{}, KindCallable},
		{"channel", make(chan struct{}), KindOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(reflect.ValueOf(tt.value))
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestClassifyKeepsPointerToStruct(t *testing.T) {
	p := &point{}
	_, v := Classify(reflect.ValueOf(p))

	assert.Equal(t, reflect.Pointer, v.Kind())
	assert.Equal(t, v.Pointer(), reflect.ValueOf(p).Pointer())
}

func TestChunkText(t *testing.T) {
	assert.Equal(t, []string{""}, chunkText(""))
	assert.Equal(t, []string{"abc"}, chunkText("abc"))

	chunks := chunkText(string(make([]rune, 80)))
	assert.Len(t, chunks, 2)

	long := chunkText(string(repeatRune('é', 2001)))
	assert.Len(t, long, 27)
	assert.Equal(t, 24+3, len([]rune(long[26])))
	assert.Equal(t, "...", long[26][len(long[26])-3:])
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "(empty)", countLabel(0))
	assert.Equal(t, "(1 item)", countLabel(1))
	assert.Equal(t, "(7 items)", countLabel(7))
}

func TestCompareKeys(t *testing.T) {
	assert.Equal(t, -1, compareKeys(reflect.ValueOf(2), reflect.ValueOf(10)))
	assert.Equal(t, 1, compareKeys(reflect.ValueOf("b"), reflect.ValueOf("a")))
	assert.Equal(t, -1, compareKeys(reflect.ValueOf(false), reflect.ValueOf(true)))
	assert.Equal(t, 0, compareKeys(reflect.ValueOf(1.5), reflect.ValueOf(1.5)))
}

func TestCompareKeysMixedInterfaceKeys(t *testing.T) {
	m := map[interface{}]int{"b": 1, 2: 2, nil: 3, "a": 4}

	out := dumpPlain(t, m)

	assert.Contains(t, out, "array(4 items)\n   <nil> => 3 (int)\n   2 => 2 (int)\n   a => 4 (int)\n   b => 1 (int)")
}

func TestLengthOf(t *testing.T) {
	n, ok := lengthOf(reflect.ValueOf(&bag{items: []int{1, 2}}))
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = lengthOf(reflect.ValueOf(point{}))
	assert.False(t, ok)
}
