package ui_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create html renderer", format: ui.FormatHTML},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ui.NewRenderer(tt.format, &bytes.Buffer{}, nil)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRenderDump(t *testing.T) {
	value := map[string]int{"answer": 42}

	tests := []struct {
		name      string
		format    ui.Format
		contains  []string
		forbidden []string
	}{
		{
			name:      "text",
			format:    ui.FormatText,
			contains:  []string{"Extbase Variable Dump\n", "answer => 42 (int)"},
			forbidden: []string{"\x1b[", "<div"},
		},
		{
			name:     "terminal",
			format:   ui.FormatTerminal,
			contains: []string{"\x1b[35m42\x1b[0m"},
		},
		{
			name:      "auto on a buffer",
			format:    ui.FormatAuto,
			contains:  []string{"answer => 42 (int)"},
			forbidden: []string{"\x1b["},
		},
		{
			name:     "html",
			format:   ui.FormatHTML,
			contains: []string{"<style type='text/css'>", "extbase-debugger-inline", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := ui.NewRenderer(tt.format, &buf, dump.New())
			require.NoError(t, err)

			require.NoError(t, r.RenderDump(value, dump.DefaultOptions()))

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.forbidden {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrDecode, "bad document").WithDetail("path", "data.json")

	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatHTML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r, rerr := ui.NewRenderer(format, &buf, nil)
			require.NoError(t, rerr)

			require.NoError(t, r.RenderError(err))

			assert.Contains(t, buf.String(), "Error:")
			assert.Contains(t, buf.String(), "bad document")
		})
	}
}

func TestTerminalRenderErrorListsDetails(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf, nil)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrDecode, "bad").WithDetail("path", "a.json")))
	require.NoError(t, r.RenderError(stderrors.New("plain failure")))

	assert.Contains(t, buf.String(), "path: a.json")
	assert.Contains(t, buf.String(), "plain failure")
}

func TestHTMLRenderMessageEscapes(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatHTML, &buf, nil)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("<b>hi</b>"))

	assert.Equal(t, "<p>&lt;b&gt;hi&lt;/b&gt;</p>\n", buf.String())
}
