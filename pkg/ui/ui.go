// Package ui writes dumps and diagnostics in the format selected on the
// command line: coloured terminal text, plain text or HTML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/ui/html"
	"github.com/arthur-debert/vardump/pkg/ui/terminal"
	"github.com/arthur-debert/vardump/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderDump dumps v with opts. The output mode fields of opts are set
	// by the renderer.
	RenderDump(v interface{}, opts dump.Options) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, d *dump.Dumper) (Renderer, error) {
	if d == nil {
		d = dump.New()
	}
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, d)
		}
		// If not a file, default to plain text
		return NewRenderer(FormatText, output, d)
	case FormatTerminal:
		return terminal.New(output, d), nil
	case FormatText:
		return text.New(output, d), nil
	case FormatHTML:
		return html.New(output, d), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
