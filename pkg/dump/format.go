package dump

import (
	"strconv"
	"strings"
)

const (
	// PlainIndent is one level of indentation in dump lines.
	PlainIndent = "   "
	// HTMLIndent indents the continuation lines of long strings in HTML.
	HTMLIndent = "&nbsp;&nbsp;&nbsp;"

	maxTextLength = 2000
	textChunkSize = 76
)

// formatter turns the pieces produced by the traversal into one output mode.
// The traversal itself never branches on the mode.
type formatter interface {
	// leaves
	text(chunks []string, count, depth int) string
	scalar(role, value string) string
	typeLabel(name string) string
	key(name string) string
	badge(role, label string) string
	visibility(label string) string

	// structure
	line(depth int) string
	containerHeader(header string, collapsible bool) string
	tree(header, content string) string
	objectHeader(header, id string, expandable bool) string
	seeAbove(header, id string) string
	anchor(id string) string

	// callables
	closureTree(header, content string) string
	closure(fragment string) string
	paramType(label string) string
	paramName(name string) string
	literal(value string) string
	source(body string) string
}

// line breaks and indents: shared by both modes
func indent(depth int) string {
	return strings.Repeat(PlainIndent, depth)
}

// chunkText truncates s to maxTextLength runes and splits it into chunks of
// textChunkSize runes. Runes are never split.
func chunkText(s string) []string {
	runes := []rune(s)
	truncated := false
	if len(runes) > maxTextLength {
		runes = runes[:maxTextLength]
		truncated = true
	}
	var chunks []string
	for start := 0; start < len(runes); start += textChunkSize {
		end := start + textChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	if truncated {
		chunks[len(chunks)-1] += "..."
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}

// countLabel renders an item count the way container headers do.
func countLabel(n int) string {
	switch {
	case n <= 0:
		return "(empty)"
	case n == 1:
		return "(1 item)"
	default:
		return "(" + strconv.Itoa(n) + " items)"
	}
}
