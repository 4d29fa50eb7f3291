// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/vardump/pkg/dump"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	dumper *dump.Dumper
}

// New creates a new text renderer
func New(output io.Writer, d *dump.Dumper) *Renderer {
	return &Renderer{output: output, dumper: d}
}

// RenderDump writes an uncoloured plain text dump.
func (r *Renderer) RenderDump(v interface{}, opts dump.Options) error {
	opts.PlainText = true
	opts.ANSIColors = false
	opts.Return = false
	opts.Writer = r.output
	_, err := r.dumper.Dump(v, opts)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
