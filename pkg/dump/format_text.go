package dump

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/vardump/pkg/escape"
	"github.com/arthur-debert/vardump/pkg/output/styles"
)

// textFormatter renders plain text, optionally coloured with ANSI codes.
type textFormatter struct {
	palette  styles.Palette
	colorize bool
}

func (f *textFormatter) wrap(role, value string) string {
	return escape.ANSI(value, f.palette.Code(role), f.colorize)
}

func (f *textFormatter) text(chunks []string, count, depth int) string {
	joined := strings.Join(chunks, "\n"+indent(depth+1))
	return f.wrap(styles.RoleString, `"`+joined+`"`) + " (" + strconv.Itoa(count) + " chars)"
}

func (f *textFormatter) scalar(role, value string) string {
	return f.wrap(role, value)
}

func (f *textFormatter) typeLabel(name string) string {
	return f.wrap(styles.RoleType, name)
}

func (f *textFormatter) key(name string) string {
	return f.wrap(styles.RoleProperty, name)
}

func (f *textFormatter) badge(role, label string) string {
	return " " + f.wrap(role, label)
}

func (f *textFormatter) visibility(label string) string {
	return f.wrap(styles.RoleVisibility, label) + " "
}

func (f *textFormatter) line(depth int) string {
	return "\n" + indent(depth)
}

func (f *textFormatter) containerHeader(header string, collapsible bool) string {
	return header
}

func (f *textFormatter) tree(header, content string) string {
	return header + content
}

func (f *textFormatter) objectHeader(header, id string, expandable bool) string {
	return header
}

// seeAbove is never reached in plain mode, already seen objects are re-expanded.
func (f *textFormatter) seeAbove(header, id string) string {
	return header + f.badge(styles.RoleFiltered, "see above")
}

func (f *textFormatter) anchor(id string) string {
	return ""
}

func (f *textFormatter) closureTree(header, content string) string {
	return header + content
}

func (f *textFormatter) closure(fragment string) string {
	return f.wrap(styles.RoleClosure, fragment)
}

func (f *textFormatter) paramType(label string) string {
	return f.wrap(styles.RoleType, label+" ")
}

func (f *textFormatter) paramName(name string) string {
	return f.wrap(styles.RoleProperty, name)
}

func (f *textFormatter) literal(value string) string {
	return f.wrap(styles.RoleString, value)
}

func (f *textFormatter) source(body string) string {
	return body
}
