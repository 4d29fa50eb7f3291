package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arthur-debert/vardump/pkg/dump"
	"gopkg.in/yaml.v3"
)

// Resolved aliases are copied, so the number of values a stream expands to
// is capped relative to its size.
const (
	yamlNodesPerByte = 10
	yamlMinNodes     = 10000
)

type yamlDecoder struct {
	budget int
}

// decodeYAML decodes every document of the stream. A single document is
// returned as is, several as a list.
func decodeYAML(data []byte) (interface{}, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	yd := &yamlDecoder{budget: yamlMinNodes + yamlNodesPerByte*len(data)}

	var docs []interface{}
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := yd.value(&node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}

	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return docs, nil
	}
}

func (d *yamlDecoder) value(node *yaml.Node) (interface{}, error) {
	d.budget--
	if d.budget < 0 {
		return nil, fmt.Errorf("document contains excessive aliasing (line %d)", node.Line)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return d.value(node.Content[0])
	case yaml.AliasNode:
		return d.value(node.Alias)
	case yaml.MappingNode:
		m := dump.NewOrderedMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := d.value(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, val)
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]interface{}, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := d.value(child)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		return list, nil
	default:
		var v interface{}
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
