package yamlite

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// Coerce converts a text fragment into a typed node by trying, in order:
// boolean, null, integer, float, quoted string, inline list, and finally
// the text verbatim. Every input has a defined result; there is no failure
// path.
func Coerce(text string) Node {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return String("")
	case "true", "True":
		return Bool(true)
	case "false", "False":
		return Bool(false)
	case "null", "~":
		return Null()
	}
	if intPattern.MatchString(text) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(v)
		}
		// Out of int64 range; take the float value if one exists.
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(v)
		}
		return String(text)
	}
	if floatPattern.MatchString(text) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(v)
		}
		return String(text)
	}
	if quoted(text) {
		return String(text[1 : len(text)-1])
	}
	if len(text) >= 2 && text[0] == '[' && text[len(text)-1] == ']' {
		var items []Node
		for _, part := range splitInline(text[1 : len(text)-1]) {
			items = append(items, Coerce(part))
		}
		return Sequence(items...)
	}
	return String(text)
}

// quoted reports whether text is wrapped in a matching pair of single or
// double quotes. No escape-sequence processing happens anywhere.
func quoted(text string) bool {
	if len(text) < 2 {
		return false
	}
	first, last := text[0], text[len(text)-1]
	return first == last && (first == '"' || first == '\'')
}

// splitInline splits the inner text of an inline list on commas. Commas
// inside quotes do not split; commas inside nested brackets do. The latter
// is a known limitation, pinned by tests.
func splitInline(s string) []string {
	var parts []string
	var current strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
			current.WriteByte(c)
		case quote != 0 && c == quote:
			quote = 0
			current.WriteByte(c)
		case quote == 0 && c == ',':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		parts = append(parts, current.String())
	}
	return parts
}
