package dump

import (
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/arthur-debert/vardump/pkg/filter"
	"github.com/arthur-debert/vardump/pkg/introspect"
	"github.com/arthur-debert/vardump/pkg/output/styles"
	"github.com/arthur-debert/vardump/pkg/visited"
	"github.com/rs/zerolog"
)

// dumpContext is the state of one top-level dump. It is created by the entry
// point and handed by pointer to every renderer.
type dumpContext struct {
	maxDepth int
	plain    bool
	policy   *filter.Policy
	seen     *visited.Set
	members  introspect.Enumerator
	source   introspect.SourceProvider
	fmt      formatter
	logger   zerolog.Logger

	// err is sticky: once set, rendering stops and the dump fails as a whole.
	err error
}

func (c *dumpContext) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// render is the value renderer. depth is the nesting level already consumed;
// only containers, objects and callables consume a level.
func (c *dumpContext) render(v reflect.Value, depth int) string {
	if c.err != nil {
		return ""
	}

	kind, v := Classify(v)
	switch kind {
	case KindNull:
		return "NULL"
	case KindOpaque:
		return "resource(" + v.Type().String() + ")"
	case KindBool:
		if v.Bool() {
			return c.fmt.scalar(styles.RoleBool, "TRUE")
		}
		return c.fmt.scalar(styles.RoleBool, "FALSE")
	case KindNumber:
		return c.fmt.scalar(styles.RoleNumber, formatNumber(v)) + " (" + v.Type().String() + ")"
	case KindText:
		s := v.String()
		return c.fmt.text(chunkText(s), utf8.RuneCountInString(s), depth)
	case KindContainer:
		return c.renderContainer(v, depth+1)
	case KindObject:
		return c.renderObject(v, depth+1)
	case KindCallable:
		return c.renderCallable(v, depth+1)
	}
	return ""
}

func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	default:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
}

// anchorID returns the HTML anchor of an object, bound to its identity when it has one.
func (c *dumpContext) anchorID(key visited.Key, hasKey bool) string {
	if hasKey {
		return c.seen.ID(key)
	}
	return c.seen.Fresh()
}
