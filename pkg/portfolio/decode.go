package portfolio

import "github.com/tmcfarlane/folio/pkg/yamlite"

// FromNode decodes a parsed document tree into the typed model. Decoding is
// as lenient as the parser: unknown keys are ignored and wrong-shaped
// values are skipped rather than reported.
func FromNode(doc yamlite.Node) Portfolio {
	return Portfolio{
		Initiatives: itemsFromNode(doc, "initiatives"),
		Projects:    itemsFromNode(doc, "projects"),
	}
}

func itemsFromNode(doc yamlite.Node, key string) []Item {
	seq, ok := doc.Get(key)
	if !ok || seq.Kind != yamlite.KindSequence {
		return nil
	}
	var items []Item
	for _, n := range seq.Items {
		if n.Kind != yamlite.KindMapping {
			continue
		}
		items = append(items, itemFromNode(n))
	}
	return items
}

func itemFromNode(n yamlite.Node) Item {
	it := Item{
		Title:   textAt(n, "title"),
		Link:    textAt(n, "link"),
		Summary: textAt(n, "summary"),
	}
	if tags, ok := n.Get("tags"); ok && tags.Kind == yamlite.KindSequence {
		for _, tag := range tags.Items {
			if s := tag.Text(); s != "" {
				it.Tags = append(it.Tags, s)
			}
		}
	}
	return it
}

func textAt(n yamlite.Node, key string) string {
	v, ok := n.Get(key)
	if !ok {
		return ""
	}
	return v.Text()
}
