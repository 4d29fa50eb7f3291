package introspect

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Level int
}

type account struct {
	Name     string
	password string
	inner
	Tags []string
}

type custom struct{}

func (custom) InspectMembers() []Member {
	return []Member{
		{Name: "id", Visibility: Protected, Get: func() reflect.Value { return reflect.ValueOf(7) }},
	}
}

func collect(t *testing.T, v interface{}) map[string]Member {
	t.Helper()
	members, err := StructEnumerator{}.Members(reflect.ValueOf(v))
	require.NoError(t, err)
	out := make(map[string]Member, len(members))
	for _, m := range members {
		out[m.Name] = m
	}
	return out
}

func TestStructEnumeratorDeclaredOrder(t *testing.T) {
	members, err := StructEnumerator{}.Members(reflect.ValueOf(account{}))
	require.NoError(t, err)

	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Name", "password", "inner", "Tags"}, names)
}

func TestStructEnumeratorVisibility(t *testing.T) {
	members := collect(t, account{})

	assert.Equal(t, Public, members["Name"].Visibility)
	assert.Equal(t, Private, members["password"].Visibility)
	assert.Equal(t, Protected, members["inner"].Visibility)
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "protected", Protected.String())
	assert.Equal(t, "private", Private.String())
}

func TestStructEnumeratorReadsUnexportedFields(t *testing.T) {
	acc := &account{Name: "ada", password: "s3cret", inner: inner{Level: 3}}
	members := collect(t, acc)

	pw := members["password"].Get()
	require.True(t, pw.CanInterface())
	assert.Equal(t, "s3cret", pw.Interface())

	in := members["inner"].Get()
	assert.Equal(t, inner{Level: 3}, in.Interface())

	// Reading never changes the inspected value.
	assert.Equal(t, "s3cret", acc.password)
}

func TestStructEnumeratorNonAddressableValue(t *testing.T) {
	members := collect(t, account{password: "by-value"})

	assert.Equal(t, "by-value", members["password"].Get().Interface())
}

func TestStructEnumeratorTime(t *testing.T) {
	members, err := StructEnumerator{}.Members(reflect.ValueOf(time.Unix(0, 0)))
	require.NoError(t, err)
	assert.NotEmpty(t, members)
	for _, m := range members {
		assert.True(t, m.Get().CanInterface(), m.Name)
	}
}

func TestStructEnumeratorInspectable(t *testing.T) {
	members := collect(t, custom{})

	require.Contains(t, members, "id")
	assert.Equal(t, Protected, members["id"].Visibility)
	assert.Equal(t, 7, members["id"].Get().Interface())
}

func TestStructEnumeratorRejectsNonStruct(t *testing.T) {
	_, err := StructEnumerator{}.Members(reflect.ValueOf(42))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIntrospection))
}

func sampleFunc(count int, target *account, opts map[string]string, rest ...string) int {
	return count + len(rest)
}

func TestFileSourceProviderClosure(t *testing.T) {
	greet := func(name string, times int) string {
		return strings.Repeat(name, times)
	}

	src, ok := NewFileSourceProvider().Source(reflect.ValueOf(greet))
	require.True(t, ok)

	assert.Equal(t, []string{"name", "times"}, src.ParamNames)
	assert.Contains(t, src.Body, "return strings.Repeat(name, times)")
	assert.NotContains(t, src.Body, "func(")
	assert.Equal(t, src.StartLine+2, src.EndLine)
	assert.True(t, strings.HasSuffix(src.File, "introspect_test.go"))
}

func TestFileSourceProviderUnavailable(t *testing.T) {
	p := &FileSourceProvider{ReadFile: func(string) ([]byte, error) {
		return nil, stderrors.New("gone")
	}}

	_, ok := p.Source(reflect.ValueOf(sampleFunc))
	assert.False(t, ok)

	_, ok = p.Source(reflect.ValueOf((func())(nil)))
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	sig := Describe(reflect.ValueOf(sampleFunc), NewFileSourceProvider())

	require.True(t, sig.HasBody)
	assert.Contains(t, sig.Body, "return count + len(rest)")
	require.Len(t, sig.Params, 4)

	assert.Equal(t, Param{Name: "count"}, sig.Params[0])
	assert.Equal(t, Param{Name: "target", TypeName: "introspect.account", ByRef: true}, sig.Params[1])
	assert.Equal(t, Param{Name: "opts", TypeName: "array"}, sig.Params[2])
	assert.Equal(t, Param{Name: "rest", Variadic: true}, sig.Params[3])
}

func TestDescribeWithoutSource(t *testing.T) {
	sig := Describe(reflect.ValueOf(func(int, error) {}), nil)

	assert.False(t, sig.HasBody)
	require.Len(t, sig.Params, 2)
	assert.Equal(t, "arg0", sig.Params[0].Name)
	assert.Equal(t, Param{Name: "arg1", TypeName: "error"}, sig.Params[1])
}
