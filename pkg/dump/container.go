package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/vardump/pkg/output/styles"
)

type containerEntry struct {
	key   string
	value reflect.Value
}

// renderContainer renders slices, arrays, maps and Listers. depth already
// includes the level consumed by this container; entries render at the same depth.
func (c *dumpContext) renderContainer(v reflect.Value, depth int) string {
	count := containerLen(v)
	header := c.fmt.typeLabel("array") + countLabel(count)
	collapsible := depth > 1 && count > 0

	var content strings.Builder
	if depth >= c.maxDepth {
		header += c.fmt.badge(styles.RoleFiltered, "max depth")
	} else {
		for _, e := range containerEntries(v) {
			content.WriteString(c.fmt.line(depth))
			content.WriteString(c.fmt.key(e.key))
			content.WriteString(" => ")
			content.WriteString(c.render(e.value, depth))
		}
		header = c.fmt.containerHeader(header, collapsible)
	}

	if collapsible {
		return c.fmt.tree(header, content.String())
	}
	return header + content.String()
}

func containerLen(v reflect.Value) int {
	if lister, ok := asLister(v); ok {
		return len(lister.DumpEntries())
	}
	return v.Len()
}

func asLister(v reflect.Value) (Lister, bool) {
	if !v.CanInterface() || !v.Type().Implements(listerType) {
		return nil, false
	}
	return v.Interface().(Lister), true
}

// containerEntries lists entries in natural order: index order for slices
// and arrays, the Lister's own order, and sorted keys for Go maps, whose
// iteration order is random.
func containerEntries(v reflect.Value) []containerEntry {
	if lister, ok := asLister(v); ok {
		entries := lister.DumpEntries()
		out := make([]containerEntry, len(entries))
		for i, e := range entries {
			out[i] = containerEntry{key: e.Key, value: reflect.ValueOf(e.Value)}
		}
		return out
	}

	switch v.Kind() {
	case reflect.Map:
		keys := v.MapKeys()
		sort.SliceStable(keys, func(i, j int) bool {
			return compareKeys(keys[i], keys[j]) < 0
		})
		out := make([]containerEntry, len(keys))
		for i, k := range keys {
			out[i] = containerEntry{key: keyString(k), value: v.MapIndex(k)}
		}
		return out
	default:
		out := make([]containerEntry, v.Len())
		for i := range out {
			out[i] = containerEntry{key: strconv.Itoa(i), value: v.Index(i)}
		}
		return out
	}
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return k.String()
}

// compareKeys orders map keys the way the fmt package prints maps:
// numbers numerically, strings lexically, false before true, and
// everything else by its printed form.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		if a.IsNil() || b.IsNil() {
			return compareNil(a.IsNil(), b.IsNil())
		}
		a, b = a.Elem(), b.Elem()
		if a.Type() != b.Type() {
			return strings.Compare(a.Type().String(), b.Type().String())
		}
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compareOrdered(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return compareOrdered(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return compareOrdered(a.Pointer(), b.Pointer())
	default:
		return strings.Compare(keyString(a), keyString(b))
	}
}

func compareNil(aNil, bNil bool) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	default:
		return 1
	}
}

func compareOrdered[T int64 | uint64 | float64 | uintptr](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
