package dump

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arthur-debert/vardump/pkg/introspect"
	"github.com/arthur-debert/vardump/pkg/output/styles"
	"github.com/arthur-debert/vardump/pkg/visited"
)

// renderCallable renders funcs and introspect.Callable values. Callables
// follow the object stop conditions but carry no prototype/object badges.
func (c *dumpContext) renderCallable(v reflect.Value, depth int) string {
	name := v.Type().String()
	key, hasKey := visited.KeyOf(v)
	id := c.anchorID(key, hasKey)

	filtered := c.policy.BlocksType(qualifiedName(structType(v)), name)
	seen := hasKey && c.seen.Contains(key)

	header := c.fmt.typeLabel(name)
	switch {
	case filtered:
		header += c.fmt.badge(styles.RoleFiltered, "filtered")
	case seen && !c.plain:
		header = c.fmt.seeAbove(header, id)
	case depth >= c.maxDepth:
		header += c.fmt.badge(styles.RoleFiltered, "max depth")
	}

	var content string
	if depth < c.maxDepth && !filtered && !(seen && !c.plain) {
		if hasKey {
			c.seen.Record(key)
		}
		content = c.renderSignature(c.signature(v), id, depth)
	}
	return c.fmt.closureTree(header, content)
}

func (c *dumpContext) signature(v reflect.Value) introspect.Signature {
	if v.CanInterface() && v.Type().Implements(callableType) {
		return v.Interface().(introspect.Callable).DumpSignature()
	}
	return introspect.Describe(v, c.source)
}

func (c *dumpContext) renderSignature(sig introspect.Signature, id string, depth int) string {
	params := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = c.renderParam(p)
	}

	var b strings.Builder
	b.WriteString(c.fmt.anchor(id))
	b.WriteString(c.fmt.line(depth))
	b.WriteString(c.fmt.closure("function ("))
	b.WriteString(strings.Join(params, ", "))
	if !sig.HasBody {
		b.WriteString(c.fmt.closure(")"))
		return b.String()
	}
	b.WriteString(c.fmt.closure(") {\n"))
	b.WriteString(c.fmt.source(sig.Body))
	b.WriteString(indent(depth))
	b.WriteString(c.fmt.closure("}"))
	return b.String()
}

func (c *dumpContext) renderParam(p introspect.Param) string {
	var b strings.Builder
	if p.TypeName != "" {
		b.WriteString(c.fmt.paramType(p.TypeName))
	}
	if p.ByRef {
		b.WriteString("&")
	}
	if p.Variadic {
		b.WriteString("...")
	}
	b.WriteString(c.fmt.paramName(p.Name))
	if p.HasDefault {
		b.WriteString(" = ")
		b.WriteString(c.fmt.literal(fmt.Sprintf("%#v", p.Default)))
	}
	return b.String()
}
