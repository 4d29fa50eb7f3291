package dump

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/vardump/pkg/escape"
	"github.com/arthur-debert/vardump/pkg/output/styles"
)

// CSS classes of the HTML output, shared with the bundled stylesheet.
const (
	classDebugger   = "extbase-debugger"
	classTop        = "extbase-debugger-top"
	classCenter     = "extbase-debugger-center"
	classTree       = "extbase-debugger-tree"
	classHeader     = "extbase-debug-header"
	classContent    = "extbase-debug-content"
	classType       = "extbase-debug-type"
	classString     = "extbase-debug-string"
	classProperty   = "extbase-debug-property"
	classFiltered   = "extbase-debug-filtered"
	classSeeAbove   = "extbase-debug-seeabove"
	classClosure    = "extbase-debug-closure"
	classVisibility = "extbase-debug-visibility"
)

var badgeClasses = map[string]string{
	styles.RoleScope:    "extbase-debug-scope",
	styles.RolePType:    "extbase-debug-ptype",
	styles.RoleFiltered: classFiltered,
}

// htmlFormatter renders the collapsible HTML tree styled by style.css.
type htmlFormatter struct{}

func (f *htmlFormatter) text(chunks []string, count, depth int) string {
	escaped := make([]string, len(chunks))
	for i, chunk := range chunks {
		escaped[i] = escape.HTML(chunk)
	}
	joined := strings.Join(escaped, "<br />"+strings.Repeat(HTMLIndent, depth+1))
	return "'" + escape.HTMLSpan(classString, joined) + "' (" + strconv.Itoa(count) + " chars)"
}

func (f *htmlFormatter) scalar(role, value string) string {
	return escape.HTML(value)
}

func (f *htmlFormatter) typeLabel(name string) string {
	return escape.HTMLSpan(classType, escape.HTML(name))
}

func (f *htmlFormatter) key(name string) string {
	return escape.HTMLSpan(classProperty, escape.HTML(name))
}

func (f *htmlFormatter) badge(role, label string) string {
	class, ok := badgeClasses[role]
	if !ok {
		class = classFiltered
	}
	return escape.HTMLSpan(class, escape.HTML(label))
}

func (f *htmlFormatter) visibility(label string) string {
	return escape.HTMLSpan(classVisibility, label)
}

func (f *htmlFormatter) line(depth int) string {
	return "\n" + indent(depth)
}

func (f *htmlFormatter) containerHeader(header string, collapsible bool) string {
	if collapsible {
		return `<input type="checkbox" /><span class="` + classHeader + `">` + header + `</span>`
	}
	return "<span>" + header + "</span>"
}

func (f *htmlFormatter) tree(header, content string) string {
	return `<span class="` + classTree + `">` + header + `<span class="` + classContent + `">` + content + `</span></span>`
}

func (f *htmlFormatter) objectHeader(header, id string, expandable bool) string {
	if !expandable {
		return "<span>" + header + "</span>"
	}
	return `<input type="checkbox" id="` + id + `" /><span class="` + classHeader + `">` + header + `</span>`
}

func (f *htmlFormatter) seeAbove(header, id string) string {
	return `<a href="javascript:;" onclick="document.location.hash='#` + id + `';" class="` + classSeeAbove + `">` +
		header + escape.HTMLSpan(classFiltered, "see above") + `</a>`
}

func (f *htmlFormatter) anchor(id string) string {
	return `<a name="` + id + `" id="` + id + `"></a>`
}

func (f *htmlFormatter) closureTree(header, content string) string {
	return `<span class="` + classTree + `"><input type="checkbox" /><span class="` + classHeader + `">` +
		header + `</span><span class="` + classContent + `">` + content + `</span></span>`
}

func (f *htmlFormatter) closure(fragment string) string {
	return escape.HTMLSpan(classClosure, escape.HTML(fragment))
}

func (f *htmlFormatter) paramType(label string) string {
	return escape.HTMLSpan(classType, escape.HTML(label+" "))
}

func (f *htmlFormatter) paramName(name string) string {
	return escape.HTMLSpan(classProperty, escape.HTML(name))
}

func (f *htmlFormatter) literal(value string) string {
	return escape.HTMLSpan(classString, escape.HTML(value))
}

func (f *htmlFormatter) source(body string) string {
	return escape.HTML(body)
}
