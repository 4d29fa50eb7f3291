// Package html writes HTML dumps, for saving to a file or serving to a browser.
package html

import (
	"fmt"
	"io"

	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/escape"
)

// Renderer writes inline HTML dumps. The stylesheet is included once per Dumper.
type Renderer struct {
	output io.Writer
	dumper *dump.Dumper
}

// New creates a new HTML renderer
func New(output io.Writer, d *dump.Dumper) *Renderer {
	return &Renderer{output: output, dumper: d}
}

// RenderDump writes the dump inline: it is returned first so that it is not
// positioned as a floating panel.
func (r *Renderer) RenderDump(v interface{}, opts dump.Options) error {
	opts.PlainText = false
	opts.Return = true
	out, err := r.dumper.Dump(v, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(r.output, out); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write dump")
	}
	return nil
}

// RenderError renders the error as an escaped paragraph.
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "<p class=\"vardump-error\">Error: %s</p>\n", escape.HTML(err.Error()))
	return err2
}

// RenderMessage renders an escaped paragraph.
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "<p>%s</p>\n", escape.HTML(msg))
	return err
}
