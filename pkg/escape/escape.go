// Package escape wraps text fragments with formatting markers: ANSI SGR
// sequences for terminals and span tags for HTML output.
package escape

import (
	"html"

	"github.com/muesli/termenv"
)

// reset closes any SGR sequence opened by ANSI
var reset = termenv.CSI + termenv.ResetSeq + "m"

// ANSI wraps value with the SGR sequence for code (e.g. "1;37").
// When enable is false the value is returned unchanged.
func ANSI(value, code string, enable bool) string {
	if !enable || code == "" {
		return value
	}
	return termenv.CSI + code + "m" + value + reset
}

// HTML escapes the special characters of an HTML text node or attribute.
func HTML(value string) string {
	return html.EscapeString(value)
}

// HTMLSpan wraps an already escaped fragment in a span carrying class.
func HTMLSpan(class, fragment string) string {
	return `<span class="` + class + `">` + fragment + `</span>`
}
