package portfolio

import (
	"errors"
	"fmt"
	"io"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Sentinel errors for KDL decoding.
var (
	ErrUnknownNode  = errors.New("unknown node type")
	ErrMissingField = errors.New("missing required field")
	ErrTypeMismatch = errors.New("argument type mismatch")
)

// LoadKDL decodes a KDL portfolio document. Top-level nodes are
// "initiative" and "project", each carrying the title as its first
// argument:
//
//	initiative "Platform Revamp" {
//	    link "/platform-revamp"
//	    summary "Consolidated three stacks into one."
//	    tags "infra" "migration"
//	}
func LoadKDL(r io.Reader, filename string) (Portfolio, error) {
	doc, err := kdl.Parse(r)
	if err != nil {
		return Portfolio{}, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var p Portfolio
	for _, node := range doc.Nodes {
		switch name := node.Name.ValueString(); name {
		case "initiative":
			it, err := itemFromKDL(node, filename)
			if err != nil {
				return Portfolio{}, err
			}
			p.Initiatives = append(p.Initiatives, it)
		case "project":
			it, err := itemFromKDL(node, filename)
			if err != nil {
				return Portfolio{}, err
			}
			p.Projects = append(p.Projects, it)
		default:
			return Portfolio{}, fmt.Errorf("%s: %w: %q", filename, ErrUnknownNode, name)
		}
	}
	return p, nil
}

func itemFromKDL(node *document.Node, filename string) (Item, error) {
	title, err := stringArg(node, 0)
	if err != nil {
		return Item{}, fmt.Errorf(
			"%s: %s missing title: %w", filename, node.Name.ValueString(), err,
		)
	}

	it := Item{Title: title}
	for _, child := range node.Children {
		switch name := child.Name.ValueString(); name {
		case "link":
			if it.Link, err = stringArg(child, 0); err != nil {
				return Item{}, fmt.Errorf("%s: item %q: link: %w", filename, title, err)
			}
		case "summary":
			if it.Summary, err = stringArg(child, 0); err != nil {
				return Item{}, fmt.Errorf("%s: item %q: summary: %w", filename, title, err)
			}
		case "tags":
			for i := range child.Arguments {
				tag, err := stringArg(child, i)
				if err != nil {
					return Item{}, fmt.Errorf("%s: item %q: tags: %w", filename, title, err)
				}
				it.Tags = append(it.Tags, tag)
			}
		default:
			return Item{}, fmt.Errorf("%s: item %q: %w: %q", filename, title, ErrUnknownNode, name)
		}
	}
	return it, nil
}

// stringArg returns the string value at the given argument index, or an error.
func stringArg(node *document.Node, idx int) (string, error) {
	if idx >= len(node.Arguments) {
		return "", fmt.Errorf("argument %d: %w", idx, ErrMissingField)
	}
	v, ok := node.Arguments[idx].ResolvedValue().(string)
	if !ok {
		return "", fmt.Errorf("argument %d: not a string: %w", idx, ErrTypeMismatch)
	}
	return v, nil
}
