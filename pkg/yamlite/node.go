package yamlite

import "strconv"

// Kind identifies the variant held by a Node.
type Kind uint8

// Node kinds. The first five are scalars.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Pair is a single key/value entry in a mapping. Pairs appear in the order
// their keys appeared in the source document.
type Pair struct {
	Key   string
	Value Node
}

// Node is the parse result: a scalar, a sequence, or an ordered mapping.
// Kind selects which payload field is meaningful; the others are zero.
// Consumers treat the tree as read-only.
type Node struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Items []Node
	Pairs []Pair
}

// Null returns the null scalar node.
func Null() Node { return Node{Kind: KindNull} }

// Bool returns a boolean scalar node.
func Bool(v bool) Node { return Node{Kind: KindBool, Bool: v} }

// Int returns an integer scalar node.
func Int(v int64) Node { return Node{Kind: KindInt, Int: v} }

// Float returns a float scalar node.
func Float(v float64) Node { return Node{Kind: KindFloat, Float: v} }

// String returns a string scalar node.
func String(v string) Node { return Node{Kind: KindString, Str: v} }

// Sequence returns a sequence node holding items in order.
func Sequence(items ...Node) Node { return Node{Kind: KindSequence, Items: items} }

// Mapping returns a mapping node holding pairs in order.
func Mapping(pairs ...Pair) Node { return Node{Kind: KindMapping, Pairs: pairs} }

// Get returns the value for key in a mapping node. The second result is
// false when the node is not a mapping or the key is absent.
func (n Node) Get(key string) (Node, bool) {
	if n.Kind != KindMapping {
		return Node{}, false
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Node{}, false
}

// Text renders a scalar node back to text form. Non-scalar nodes return the
// empty string.
func (n Node) Text() string {
	switch n.Kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindInt:
		return strconv.FormatInt(n.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case KindString:
		return n.Str
	default:
		return ""
	}
}

// Interface converts the tree into plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Mapping order is lost in the
// map form; walk Pairs directly when order matters.
func (n Node) Interface() any {
	switch n.Kind {
	case KindNull:
		return nil
	case KindBool:
		return n.Bool
	case KindInt:
		return n.Int
	case KindFloat:
		return n.Float
	case KindString:
		return n.Str
	case KindSequence:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(n.Pairs))
		for _, p := range n.Pairs {
			out[p.Key] = p.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
