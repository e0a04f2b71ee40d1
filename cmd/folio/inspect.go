package main

import (
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/tmcfarlane/folio/pkg/yamlite"
)

// printTree writes the parsed tree to stdout, either re-serialized as YAML
// (the default, preserving key order) or as a raw Go value dump.
func (a *app) printTree(node yamlite.Node, raw bool) error {
	if raw {
		spew.Fdump(a.stdout, node)
		return nil
	}

	out, err := yaml.Marshal(toYAMLNode(node))
	if err != nil {
		return fmt.Errorf("re-serializing tree: %w", err)
	}
	_, _ = a.stdout.Write(out)
	return nil
}

// toYAMLNode converts a parsed tree into a yaml.Node so Marshal keeps the
// document's key order, which the plain map form would lose.
func toYAMLNode(n yamlite.Node) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch n.Kind {
	case yamlite.KindNull:
		return scalar("!!null", "null")
	case yamlite.KindBool:
		return scalar("!!bool", strconv.FormatBool(n.Bool))
	case yamlite.KindInt:
		return scalar("!!int", strconv.FormatInt(n.Int, 10))
	case yamlite.KindFloat:
		return scalar("!!float", strconv.FormatFloat(n.Float, 'g', -1, 64))
	case yamlite.KindString:
		return scalar("!!str", n.Str)
	case yamlite.KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items {
			out.Content = append(out.Content, toYAMLNode(item))
		}
		return out
	default:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range n.Pairs {
			out.Content = append(out.Content, scalar("!!str", p.Key), toYAMLNode(p.Value))
		}
		return out
	}
}
