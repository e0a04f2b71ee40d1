package yamlite

import "strings"

// maxDepth caps recursion. Nesting past the cap is consumed but produces no
// nodes, keeping Parse total on adversarial input instead of exhausting the
// stack.
const maxDepth = 500

// indentOf returns the number of leading space characters on line. Tabs are
// not indentation: a tab ends the run like any other content byte.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}
	return len(line)
}

// skippable reports whether a trimmed line carries no content. Blank lines
// and #-comments are passed over everywhere without indentation semantics.
func skippable(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// splitKeyValue splits "key: value" at the first colon. A line with nothing
// before its first colon does not match.
func splitKeyValue(s string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(s, ":")
	if !ok || key == "" {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// setPair appends a new key or, for a repeated key, overwrites the existing
// value in place. The first occurrence keeps its position.
func setPair(pairs []Pair, key string, value Node) []Pair {
	for i := range pairs {
		if pairs[i].Key == key {
			pairs[i].Value = value
			return pairs
		}
	}
	return append(pairs, Pair{Key: key, Value: value})
}

// nextContent returns the index of the first non-blank line at or after
// start. Comment lines count as content here; the recursive call they land
// in skips them itself.
func nextContent(lines []string, start int) int {
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	return start
}

// skipNested consumes the contiguous run of lines nested deeper than
// parentIndent, plus interleaved blanks and comments, and returns the first
// index past it.
func skipNested(lines []string, start, parentIndent int) int {
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if skippable(trimmed) {
			i++
			continue
		}
		if indentOf(lines[i]) <= parentIndent {
			break
		}
		i++
	}
	return i
}

// parseBlock parses a run of key/value lines more indented than
// parentIndent, starting at lines[start]. It returns the mapping and the
// index of the first line it does not own: every call consumes exactly the
// lines of its own block, never a sibling's or an ancestor's.
//
// A list marker seen at this level hands the whole block to parseList; any
// keys accumulated before it are dropped. Well-formed documents never mix
// keys and items at one level, so the drop is only observable on malformed
// input, which this parser tolerates by contract.
func parseBlock(lines []string, start, parentIndent, depth int) (Node, int) {
	if depth > maxDepth {
		return Mapping(), skipNested(lines, start, parentIndent)
	}

	var pairs []Pair
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if skippable(trimmed) {
			i++
			continue
		}
		indent := indentOf(lines[i])
		if indent <= parentIndent {
			break
		}
		if strings.HasPrefix(trimmed, "- ") {
			return parseList(lines, i, indent, depth+1)
		}
		key, value, ok := splitKeyValue(trimmed)
		if !ok {
			i++ // malformed line, dropped
			continue
		}
		if value != "" {
			pairs = setPair(pairs, key, Coerce(value))
			i++
			continue
		}

		// Empty value: the child block, if any, starts at the next
		// content line at greater indent.
		next := nextContent(lines, i+1)
		if next >= len(lines) || indentOf(lines[next]) <= indent {
			pairs = setPair(pairs, key, String(""))
			i++
			continue
		}
		var child Node
		if strings.HasPrefix(strings.TrimSpace(lines[next]), "- ") {
			child, i = parseList(lines, next, indentOf(lines[next]), depth+1)
		} else {
			child, i = parseBlock(lines, next, indent, depth+1)
		}
		pairs = setPair(pairs, key, child)
	}
	return Mapping(pairs...), i
}

// parseList parses a run of list items at exactly listIndent, starting at
// lines[start]. Each item is a scalar or an inline mapping continued on
// deeper lines. A content line at lesser indent ends the sequence, as does
// a non-marker line at listIndent itself. Deeper non-marker lines were
// already consumed with their item and are stepped over.
func parseList(lines []string, start, listIndent, depth int) (Node, int) {
	if depth > maxDepth {
		return Sequence(), skipNested(lines, start, listIndent-1)
	}

	var items []Node
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if skippable(trimmed) {
			i++
			continue
		}
		indent := indentOf(lines[i])
		if indent < listIndent {
			break
		}
		if indent > listIndent && !strings.HasPrefix(trimmed, "- ") {
			i++
			continue
		}
		if !strings.HasPrefix(trimmed, "- ") {
			break
		}

		content := strings.TrimSpace(trimmed[2:])
		key, value, ok := splitKeyValue(content)
		if !ok {
			items = append(items, Coerce(content))
			i++
			continue
		}
		item, next := parseItemMapping(lines, i+1, indent, depth, Pair{Key: key, Value: Coerce(value)})
		items = append(items, item)
		i = next
	}
	return Sequence(items...), i
}

// parseItemMapping collects the key/value continuation lines of a single
// "- key: value" item, which sit at strictly greater indent than the
// marker. It stops at a line at or under the marker's indent or at another
// list marker. The only nesting supported inside an item is a sequence
// hanging off an empty-valued key.
func parseItemMapping(lines []string, start, markerIndent, depth int, first Pair) (Node, int) {
	pairs := []Pair{first}
	j := start
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if skippable(trimmed) {
			j++
			continue
		}
		indent := indentOf(lines[j])
		if indent <= markerIndent {
			break
		}
		if strings.HasPrefix(trimmed, "- ") {
			break
		}
		key, value, ok := splitKeyValue(trimmed)
		if !ok {
			j++
			continue
		}
		if value != "" {
			pairs = setPair(pairs, key, Coerce(value))
			j++
			continue
		}
		next := nextContent(lines, j+1)
		if next < len(lines) && indentOf(lines[next]) > indent &&
			strings.HasPrefix(strings.TrimSpace(lines[next]), "- ") {
			var nested Node
			nested, j = parseList(lines, next, indentOf(lines[next]), depth+1)
			pairs = setPair(pairs, key, nested)
			continue
		}
		pairs = setPair(pairs, key, String(""))
		j++
	}
	return Mapping(pairs...), j
}
