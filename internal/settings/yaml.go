package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML settings document into a Tree. Mapping order is
// preserved by walking the node graph instead of decoding into Go maps.
func ParseYAML(data []byte) (*Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var doc yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	root := &doc
	if root.Kind == 0 {
		return nil, ErrEmpty
	}

	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmpty
		}

		root = root.Content[0]
	}

	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: found %s", ErrRootNotObject, yamlKindName(root))
	}

	return yamlMapping(root)
}

// yamlMapping builds a Tree from a mapping node. Merge keys ("<<") copy in
// the pairs of the referenced mappings at their position; keys written in
// the mapping itself always win, and earlier merge sources win over later
// ones.
func yamlMapping(n *yaml.Node) (*Tree, error) {
	explicit := make(map[string]bool, len(n.Content)/2)
	keys := make([]string, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if isMergeKey(keyNode) {
			continue
		}

		if err := keyNode.Decode(&keys[i/2]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, keyNode.Line, err)
		}

		explicit[keys[i/2]] = true
	}

	tree := NewTree()

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		if isMergeKey(keyNode) {
			sources, err := yamlMergeSources(valueNode)
			if err != nil {
				return nil, err
			}

			for _, src := range sources {
				src.Each(func(key string, value any) {
					if explicit[key] {
						return
					}

					if _, seen := tree.Get(key); !seen {
						tree.Set(key, value)
					}
				})
			}

			continue
		}

		v, err := yamlValue(valueNode)
		if err != nil {
			return nil, err
		}

		tree.Set(keys[i/2], v)
	}

	return tree, nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

// yamlMergeSources returns the mappings referenced by a merge value: one
// mapping, or a sequence of mappings.
func yamlMergeSources(n *yaml.Node) ([]*Tree, error) {
	n = resolveAlias(n)

	var nodes []*yaml.Node

	switch n.Kind {
	case yaml.MappingNode:
		nodes = []*yaml.Node{n}
	case yaml.SequenceNode:
		for _, item := range n.Content {
			nodes = append(nodes, resolveAlias(item))
		}
	default:
		return nil, fmt.Errorf("%w: line %d: merge value must be a mapping or a sequence of mappings", ErrSyntax, n.Line)
	}

	sources := make([]*Tree, 0, len(nodes))

	for _, item := range nodes {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: merge value must be a mapping or a sequence of mappings", ErrSyntax, item.Line)
		}

		src, err := yamlMapping(item)
		if err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)

	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n.Line, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("%w: line %d: unsupported node", ErrSyntax, n.Line)
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func yamlKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}
