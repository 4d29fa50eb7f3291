package dump

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/introspect"
	"github.com/arthur-debert/vardump/pkg/output/styles"
	"github.com/arthur-debert/vardump/pkg/visited"
)

// isoTimeLayout matches the header timestamp of time-like values.
const isoTimeLayout = "2006-01-02T15:04:05-07:00"

// renderObject renders structs, pointers to structs and Inspectables.
//
// The header is always rendered. Expansion then stops at the first of:
// the type is filtered, the object was already expanded (HTML only), or
// the depth limit is reached. Time values never show the depth marker.
func (c *dumpContext) renderObject(v reflect.Value, depth int) string {
	t := structType(v)
	name := t.String()
	key, hasKey := visited.KeyOf(v)
	id := c.anchorID(key, hasKey)

	members, err := c.members.Members(v)
	if err != nil {
		c.fail(errors.Wrapf(err, errors.ErrIntrospection, "failed to inspect %s", name))
		return ""
	}

	filtered := c.policy.BlocksType(qualifiedName(t), name)
	seen := hasKey && c.seen.Contains(key)
	when, timeLike := asTime(v)
	count, countable := lengthOf(v)

	header := c.fmt.typeLabel(name) +
		c.fmt.badge(styles.RoleScope, "prototype") +
		c.fmt.badge(styles.RolePType, "object")

	switch {
	case filtered:
		c.logger.Debug().Str("type", name).Msg("Type filtered")
		header += c.fmt.badge(styles.RoleFiltered, "filtered")
	case seen && !c.plain:
		header = c.fmt.seeAbove(header, id)
	case depth >= c.maxDepth && !timeLike:
		header += c.fmt.badge(styles.RoleFiltered, "max depth")
	case depth > 1 && !timeLike:
		expandable := len(members) > 0 && !(countable && count == 0)
		header = c.fmt.objectHeader(header, id, expandable)
	}

	if countable {
		header += " " + countLabel(count)
	}
	if timeLike {
		header += " (" + when.Format(isoTimeLayout) + ", " + strconv.FormatInt(when.Unix(), 10) + ")"
	}

	var content string
	if depth < c.maxDepth && !filtered && !(seen && !c.plain) {
		if hasKey {
			c.seen.Record(key)
		}
		content = c.renderMembers(members, id, depth)
	}
	return c.fmt.tree(header, content)
}

func (c *dumpContext) renderMembers(members []introspect.Member, id string, depth int) string {
	var b strings.Builder
	b.WriteString(c.fmt.anchor(id))
	for _, m := range members {
		if c.policy.BlocksMember(m.Name) {
			continue
		}
		b.WriteString(c.fmt.line(depth))
		b.WriteString(c.fmt.key(m.Name))
		b.WriteString(" => ")
		b.WriteString(c.fmt.visibility(m.Visibility.String()))
		b.WriteString(c.render(m.Get(), depth))
	}
	return b.String()
}
