// Package dump renders arbitrary Go values as human-readable plain text or
// HTML for debugging.
//
// A dump walks the value depth first. Containers, structs and funcs each
// consume one level of depth; past Options.MaxDepth a "max depth" marker is
// shown instead of their content. Objects reachable through pointers are
// expanded once per dump: later occurrences in HTML output link back to the
// first one ("see above"). Plain text has no links, so it re-expands them and
// relies on the depth limit alone to terminate on cycles.
//
// Package-level functions use Std, whose defaults and "stylesheet already
// emitted" flag are shared by the whole process. Std is not safe for
// concurrent use; use NewLocked, or one Dumper per goroutine, instead.
package dump

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/arthur-debert/vardump/pkg/assets"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/escape"
	"github.com/arthur-debert/vardump/pkg/filter"
	"github.com/arthur-debert/vardump/pkg/introspect"
	"github.com/arthur-debert/vardump/pkg/logging"
	"github.com/arthur-debert/vardump/pkg/output/styles"
	"github.com/arthur-debert/vardump/pkg/visited"
)

const (
	// DefaultTitle is shown above every dump without a title of its own.
	DefaultTitle = "Extbase Variable Dump"
	// DefaultMaxDepth bounds recursion when no depth is given.
	DefaultMaxDepth = 8
)

// Options configures one dump call. Start from DefaultOptions: the zero value
// disables colours.
type Options struct {
	// Title is shown in the title bar; empty selects DefaultTitle.
	Title string
	// MaxDepth bounds recursion; zero or less selects the Dumper's default.
	MaxDepth int
	// PlainText selects plain text instead of HTML.
	PlainText bool
	// ANSIColors colours plain text output. It has no effect on HTML.
	ANSIColors bool
	// Return makes Dump return the output instead of writing it.
	Return bool
	// BlockedTypeNames and BlockedMemberNames are regular expressions
	// matched against whole names. nil selects the Dumper's defaults.
	BlockedTypeNames   []string
	BlockedMemberNames []string
	// Writer receives the output unless Return is set; nil selects the Dumper's output.
	Writer io.Writer
}

// DefaultOptions returns the options of a plain `Var(v)` call.
func DefaultOptions() Options {
	return Options{
		Title:      DefaultTitle,
		MaxDepth:   DefaultMaxDepth,
		ANSIColors: true,
	}
}

// Dumper holds the defaults and the per-process state shared by its dumps.
type Dumper struct {
	// TypeNames and MemberNames are the default filter lists.
	TypeNames   []string
	MemberNames []string
	// MaxDepth is used when a call gives none.
	MaxDepth int
	// Out receives output when a call gives no Writer.
	Out io.Writer

	Stylesheet assets.Loader
	Palette    styles.Palette
	Members    introspect.Enumerator
	Source     introspect.SourceProvider

	mu           *sync.Mutex
	styleEmitted bool
}

// Std is the process-wide Dumper behind Var and VarWithOptions.
var Std = New()

// New returns a Dumper with the package defaults. Its state is independent
// of Std and of every other Dumper.
func New() *Dumper {
	return &Dumper{
		TypeNames:   append([]string(nil), filter.DefaultTypeNames...),
		MemberNames: append([]string(nil), filter.DefaultMemberNames...),
		MaxDepth:    DefaultMaxDepth,
		Out:         os.Stdout,
		Stylesheet:  assets.Stylesheet,
		Palette:     styles.Default(),
		Members:     introspect.StructEnumerator{},
		Source:      introspect.NewFileSourceProvider(),
	}
}

// NewLocked returns a Dumper whose calls are serialised by a mutex, for use
// from several goroutines.
func NewLocked() *Dumper {
	d := New()
	d.mu = &sync.Mutex{}
	return d
}

// Var dumps v with DefaultOptions through Std.
func Var(v interface{}) (string, error) {
	return Std.Dump(v, DefaultOptions())
}

// VarWithOptions dumps v with opts through Std.
func VarWithOptions(v interface{}, opts Options) (string, error) {
	return Std.Dump(v, opts)
}

// ResetStylesheet forgets that the stylesheet was emitted, so the next HTML
// dump includes it again.
func (d *Dumper) ResetStylesheet() {
	if d.mu != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
	}
	d.styleEmitted = false
}

// Dump renders v. Unless opts.Return is set the output is written to the
// writer and the result is empty. An introspection failure aborts the whole
// dump: nothing is written and no partial output is returned.
func (d *Dumper) Dump(v interface{}, opts Options) (string, error) {
	if d.mu != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
	}

	logger := logging.GetLogger("dump")
	done := logging.LogOperationStart(logger, "dump")
	defer done()

	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = d.MaxDepth
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	colorize := opts.PlainText && opts.ANSIColors

	body, err := d.renderBody(v, opts, colorize)
	if err != nil {
		return "", err
	}

	var css string
	if !opts.PlainText && !d.styleEmitted {
		css, err = d.stylesheet()
		if err != nil {
			return "", err
		}
		d.styleEmitted = true
		logger.Debug().Msg("Stylesheet emitted")
	}

	var output string
	if opts.PlainText {
		title := escape.ANSI(opts.Title, d.palette().Code(styles.RoleTitle), colorize)
		output = title + "\n" + body + "\n\n"
	} else {
		output = wrapHTML(opts.Title, body, opts.Return)
	}

	if opts.Return {
		return css + output, nil
	}

	w := opts.Writer
	if w == nil {
		w = d.Out
	}
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, css+output); err != nil {
		return "", errors.Wrap(err, errors.ErrOutput, "failed to write dump")
	}
	return "", nil
}

// renderBody runs the traversal with a fresh visited set and filter policy.
func (d *Dumper) renderBody(v interface{}, opts Options, colorize bool) (body string, err error) {
	typeNames := opts.BlockedTypeNames
	if typeNames == nil {
		typeNames = nonNil(d.TypeNames)
	}
	memberNames := opts.BlockedMemberNames
	if memberNames == nil {
		memberNames = nonNil(d.MemberNames)
	}

	ctx := &dumpContext{
		maxDepth: opts.MaxDepth,
		plain:    opts.PlainText,
		policy:   filter.New(typeNames, memberNames),
		seen:     visited.New(),
		members:  d.Members,
		source:   d.Source,
		logger:   logging.GetLogger("dump"),
	}
	if ctx.members == nil {
		ctx.members = introspect.StructEnumerator{}
	}
	if opts.PlainText {
		ctx.fmt = &textFormatter{palette: d.palette(), colorize: colorize}
	} else {
		ctx.fmt = &htmlFormatter{}
	}

	defer func() {
		if r := recover(); r != nil {
			body = ""
			err = errors.Newf(errors.ErrIntrospection, "failed to inspect value: %v", r).
				WithDetail("type", fmt.Sprintf("%T", v))
		}
	}()

	body = ctx.render(reflect.ValueOf(v), 0)
	if ctx.err != nil {
		return "", ctx.err
	}
	ctx.logger.Trace().Int("objects", ctx.seen.Len()).Int("bytes", len(body)).Msg("Dump rendered")
	return body, nil
}

func (d *Dumper) stylesheet() (string, error) {
	load := d.Stylesheet
	if load == nil {
		load = assets.Stylesheet
	}
	css, err := load()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrStylesheet, "failed to load stylesheet")
	}
	return "<style type='text/css'>" + css + "</style>", nil
}

func (d *Dumper) palette() styles.Palette {
	if d.Palette == nil {
		return styles.Default()
	}
	return d.Palette
}

// nonNil keeps an empty default list from being read as "use the defaults".
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func wrapHTML(title, body string, inline bool) string {
	placement := "extbase-debugger-floating"
	if inline {
		placement = "extbase-debugger-inline"
	}
	var b strings.Builder
	b.WriteString("\n<div class=\"" + classDebugger + " " + placement + "\">\n")
	b.WriteString("<div class=\"" + classTop + "\">" + escape.HTML(title) + "</div>\n")
	b.WriteString("<div class=\"" + classCenter + "\">\n")
	b.WriteString("<pre dir=\"ltr\">" + body + "</pre>\n")
	b.WriteString("</div>\n</div>\n")
	return b.String()
}
