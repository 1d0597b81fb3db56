package fields

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the pairs as a YAML mapping in their original order.
func (m *Mapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range m.All() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}

		value := &yaml.Node{}
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", k, err)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}

// UnmarshalYAML reads a YAML mapping keeping document order.
// Nested mappings become *Mapping values and sequences become []any.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got %v at line %d", kindName(node.Kind), node.Line)
	}

	out := New(len(node.Content) / 2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("invalid key at line %d: %w", node.Content[i].Line, err)
		}

		if out.Has(key) {
			return fmt.Errorf("duplicate key %q at line %d", key, node.Content[i].Line)
		}

		value, err := decodeValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		out.Set(key, value)
	}

	*m = *out

	return nil
}

func decodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeValue(node.Alias)

	case yaml.MappingNode:
		nested := &Mapping{}
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}

		return nested, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}

		return items, nil

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil
	}
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
