// pkg/document/document_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temporary files
// PURPOSE: Test document decoding into dumpable values

package document_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/vardump/pkg/document"
	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string, f document.Format) interface{} {
	t.Helper()
	v, err := document.Decode(strings.NewReader(src), f)
	require.NoError(t, err)
	return v
}

func ordered(t *testing.T, v interface{}) *dump.OrderedMap {
	t.Helper()
	m, ok := v.(*dump.OrderedMap)
	require.True(t, ok, "expected *dump.OrderedMap, got %T", v)
	return m
}

func TestDecodeJSON(t *testing.T) {
	m := ordered(t, decode(t, `{"b": 1, "a": [true, null, "x", 1.5], "c": {}}`, document.FormatJSON))

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	b, _ := m.Get("b")
	assert.Equal(t, int64(1), b)
	a, _ := m.Get("a")
	assert.Equal(t, []interface{}{true, nil, "x", 1.5}, a)
	c, _ := m.Get("c")
	assert.Equal(t, 0, ordered(t, c).Len())
}

func TestDecodeJSONWithTabs(t *testing.T) {
	m := ordered(t, decode(t, "{\n\t\"k\": \"v\"\n}", document.FormatJSON))

	v, _ := m.Get("k")
	assert.Equal(t, "v", v)
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	_, err := document.Decode(strings.NewReader(`{} {}`), document.FormatJSON)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	assert.Equal(t, "json", errors.GetErrorDetails(err)["format"])
}

func TestDecodeYAML(t *testing.T) {
	m := ordered(t, decode(t, "zeta: 1\nalpha: two\nanchor: &v 3\nalias: *v\nempty:\n", document.FormatYAML))

	assert.Equal(t, []string{"zeta", "alpha", "anchor", "alias", "empty"}, m.Keys())
	zeta, _ := m.Get("zeta")
	assert.Equal(t, 1, zeta)
	alias, _ := m.Get("alias")
	assert.Equal(t, 3, alias)
	empty, ok := m.Get("empty")
	assert.True(t, ok)
	assert.Nil(t, empty)
}

func TestDecodeYAMLStream(t *testing.T) {
	v := decode(t, "---\na: 1\n---\n- x\n", document.FormatYAML)

	docs, ok := v.([]interface{})
	require.True(t, ok)
	require.Len(t, docs, 2)
	assert.Equal(t, []interface{}{"x"}, docs[1])
}

func TestDecodeYAMLNestedAliasesWithinLimit(t *testing.T) {
	src := "base: &b [1, 2, 3]\ntwice: &t [*b, *b]\nfour: [*t, *t]\n"
	m := ordered(t, decode(t, src, document.FormatYAML))

	four, ok := m.Get("four")
	require.True(t, ok)
	require.Len(t, four, 2)
	assert.Equal(t, []interface{}{[]interface{}{1, 2, 3}, []interface{}{1, 2, 3}}, four.([]interface{})[0])
}

func TestDecodeYAMLRejectsExcessiveAliasing(t *testing.T) {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "l%d: &l%d [", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", i-1)
		}
		b.WriteString("]\n")
	}

	_, err := document.Decode(strings.NewReader(b.String()), document.FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	assert.Contains(t, err.Error(), "excessive aliasing")
	assert.Equal(t, "yaml", errors.GetErrorDetails(err)["format"])
}

func TestDecodeEmptyYAML(t *testing.T) {
	assert.Nil(t, decode(t, "", document.FormatYAML))
}

func TestDecodeTOML(t *testing.T) {
	v := decode(t, "title = \"t\"\n[owner]\nname = \"n\"\nage = 3\n", document.FormatTOML)

	m, ok := v.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "t", m["title"])
	assert.Equal(t, map[string]interface{}{"name": "n", "age": int64(3)}, m["owner"])
}

func TestDecodeXML(t *testing.T) {
	src := `<?xml version="1.0"?>
<root id="1">
  <item>a</item>
  <item>b</item>
  <item>c</item>
  <name lang="en">n</name>
  tail
</root>`

	m := ordered(t, decode(t, src, document.FormatXML))
	assert.Equal(t, []string{"root"}, m.Keys())

	rv, _ := m.Get("root")
	root := ordered(t, rv)
	assert.Equal(t, []string{"@id", "item", "name", "#text"}, root.Keys())

	items, _ := root.Get("item")
	assert.Equal(t, []interface{}{"a", "b", "c"}, items)

	nv, _ := root.Get("name")
	name := ordered(t, nv)
	lang, _ := name.Get("@lang")
	assert.Equal(t, "en", lang)
	text, _ := name.Get("#text")
	assert.Equal(t, "n", text)

	tail, _ := root.Get("#text")
	assert.Equal(t, "tail", tail)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		format document.Format
		src    string
	}{
		{document.FormatJSON, `{"a": }`},
		{document.FormatYAML, "a: [1, 2"},
		{document.FormatTOML, "a = "},
		{document.FormatXML, "<a><b></a>"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			_, err := document.Decode(strings.NewReader(tt.src), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
		})
	}
}

func TestSniff(t *testing.T) {
	assert.Equal(t, document.FormatJSON, document.Sniff([]byte("  {\"a\":1}")))
	assert.Equal(t, document.FormatJSON, document.Sniff([]byte("\n[1]")))
	assert.Equal(t, document.FormatXML, document.Sniff([]byte("<a/>")))
	assert.Equal(t, document.FormatYAML, document.Sniff([]byte("a: 1")))
	assert.Equal(t, document.FormatYAML, document.Sniff(nil))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, document.FormatJSON, document.FormatFromPath("data.json"))
	assert.Equal(t, document.FormatYAML, document.FormatFromPath("a/b.yml"))
	assert.Equal(t, document.FormatTOML, document.FormatFromPath("Cargo.TOML"))
	assert.Equal(t, document.FormatXML, document.FormatFromPath("pom.xml"))
	assert.Equal(t, document.FormatUnknown, document.FormatFromPath("README"))
}

func TestParseFormat(t *testing.T) {
	f, err := document.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, f)

	_, err = document.ParseFormat("csv")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"z": 1, "a": 2}`), 0644))

	v, err := document.Load(path, document.FormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, ordered(t, v).Keys())

	noExt := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(noExt, []byte("<a>1</a>"), 0644))
	v, err = document.Load(noExt, document.FormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ordered(t, v).Keys())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := document.Load(filepath.Join(dir, "missing.json"), document.FormatUnknown)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = document.Load(bad, document.FormatUnknown)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	assert.Equal(t, bad, errors.GetErrorDetails(err)["path"])
}

func TestDumpKeepsDocumentOrder(t *testing.T) {
	v := decode(t, `{"zeta": 1, "alpha": "x"}`, document.FormatJSON)
	opts := dump.DefaultOptions()
	opts.PlainText = true
	opts.ANSIColors = false
	opts.Return = true
	opts.Title = "doc"

	out, err := dump.New().Dump(v, opts)
	require.NoError(t, err)

	assert.Equal(t, "doc\narray(2 items)\n   zeta => 1 (int64)\n   alpha => \"x\" (1 chars)\n\n", out)
}
