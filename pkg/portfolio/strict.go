package portfolio

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tmcfarlane/folio/pkg/yamlite"
)

// DecodeStrict parses data with a full YAML decoder and converts the result
// into the same Node shape the lenient parser produces, so downstream code
// is agnostic to which decoder ran. Unlike yamlite.Parse this surfaces
// syntax errors instead of degrading.
func DecodeStrict(data []byte) (yamlite.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return yamlite.Node{}, fmt.Errorf("decoding YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return yamlite.Mapping(), nil
	}
	// The document node wraps exactly one child.
	return convertYAML(root.Content[0])
}

func convertYAML(n *yaml.Node) (yamlite.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return convertYAMLScalar(n), nil
	case yaml.SequenceNode:
		var items []yamlite.Node
		for _, c := range n.Content {
			item, err := convertYAML(c)
			if err != nil {
				return yamlite.Node{}, err
			}
			items = append(items, item)
		}
		return yamlite.Sequence(items...), nil
	case yaml.MappingNode:
		var pairs []yamlite.Pair
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := convertYAML(n.Content[i+1])
			if err != nil {
				return yamlite.Node{}, err
			}
			pairs = append(pairs, yamlite.Pair{Key: n.Content[i].Value, Value: value})
		}
		return yamlite.Mapping(pairs...), nil
	case yaml.AliasNode:
		return convertYAML(n.Alias)
	default:
		return yamlite.Node{}, fmt.Errorf(
			"line %d: unsupported YAML node kind %d", n.Line, n.Kind,
		)
	}
}

func convertYAMLScalar(n *yaml.Node) yamlite.Node {
	switch n.Tag {
	case "!!null":
		return yamlite.Null()
	case "!!bool":
		if v, err := strconv.ParseBool(n.Value); err == nil {
			return yamlite.Bool(v)
		}
	case "!!int":
		if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return yamlite.Int(v)
		}
	case "!!float":
		if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return yamlite.Float(v)
		}
	}
	return yamlite.String(n.Value)
}
