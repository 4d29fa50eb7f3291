// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes ANSI coloured dumps and styled diagnostics.
type Renderer struct {
	output io.Writer
	dumper *dump.Dumper

	errorStyle  lipgloss.Style
	detailStyle lipgloss.Style
	infoStyle   lipgloss.Style
}

// New creates a new terminal renderer
func New(w io.Writer, d *dump.Dumper) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		output:      w,
		dumper:      d,
		errorStyle:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		detailStyle: lr.NewStyle().Faint(true).PaddingLeft(2),
		infoStyle:   lr.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// RenderDump writes a coloured plain text dump. Colours can still be turned
// off through opts.ANSIColors.
func (r *Renderer) RenderDump(v interface{}, opts dump.Options) error {
	opts.PlainText = true
	opts.Return = false
	opts.Writer = r.output
	_, err := r.dumper.Dump(v, opts)
	return err
}

// RenderError renders the error and its details, one per line.
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintln(r.output, r.errorStyle.Render("Error:")+" "+err.Error()); werr != nil {
		return werr
	}
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line := fmt.Sprintf("%s: %v", k, details[k])
		if _, werr := fmt.Fprintln(r.output, r.detailStyle.Render(line)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.infoStyle.Render(msg))
	return err
}
