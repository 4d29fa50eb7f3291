package document

import (
	"strings"

	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/beevik/etree"
)

// Keys used for XML content that is not a child element.
const (
	attrPrefix = "@"
	textKey    = "#text"
)

// decodeXML maps the root element to a one-entry map keyed by its tag.
// Attributes become "@name" entries, repeated child tags become lists and
// text mixed with children is kept under "#text".
func decodeXML(data []byte) (interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	m := dump.NewOrderedMap()
	if root == nil {
		return m, nil
	}
	m.Set(root.FullTag(), xmlElement(root))
	return m, nil
}

func xmlElement(el *etree.Element) interface{} {
	children := el.ChildElements()
	text := xmlText(el)
	if len(el.Attr) == 0 && len(children) == 0 {
		return text
	}

	m := dump.NewOrderedMap()
	for _, a := range el.Attr {
		m.Set(attrPrefix+a.FullKey(), a.Value)
	}
	for _, child := range children {
		tag := child.FullTag()
		val := xmlElement(child)
		existing, ok := m.Get(tag)
		if !ok {
			m.Set(tag, val)
			continue
		}
		if list, isList := existing.([]interface{}); isList {
			m.Set(tag, append(list, val))
		} else {
			m.Set(tag, []interface{}{existing, val})
		}
	}
	if text != "" {
		m.Set(textKey, text)
	}
	return m
}

// xmlText joins the element's own character data, trimmed.
func xmlText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
