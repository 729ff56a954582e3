package header

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML mapping into h, keeping the document's key
// order.
func (h *Header) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("header must be a YAML mapping, got line %d", node.Line)
	}

	decoded := New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var value interface{}
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("error decoding header keyword %s: %w", keyNode.Value, err)
		}
		decoded.Set(keyNode.Value, value)
	}

	*h = *decoded
	return nil
}

// MarshalYAML encodes h as a YAML mapping in key order.
func (h *Header) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range h.keys {
		var value yaml.Node
		if err := value.Encode(h.values[k]); err != nil {
			return nil, fmt.Errorf("error encoding header keyword %s: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&value,
		)
	}
	return node, nil
}
