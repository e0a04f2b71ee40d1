// Package yamlite implements a small, deliberately lenient parser for the
// flat-to-nested subset of YAML used by portfolio documents.
//
// The subset covers scalars, inline arrays, nested mappings, sequences of
// scalars, and sequences of mappings, with nesting driven entirely by
// indentation. Anchors, tags, multi-document streams, flow mappings and
// block scalars are not supported; documents that need them belong in a
// full YAML decoder.
//
// Parsing is total: malformed lines are dropped rather than reported, a key
// with a missing value defaults to the empty string, and unterminated
// blocks simply end at end of input. The goal is best-effort rendering of a
// content file, not validation.
package yamlite

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse parses source text into a Node tree. It never fails: every input
// string has a defined result, with unparseable lines dropped.
func Parse(text string) Node {
	lines := strings.Split(text, "\n")
	root, _ := parseBlock(lines, 0, -1, 0)
	return root
}

// ParseReader reads all of r and parses it. The only errors are read errors.
func ParseReader(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Node{}, fmt.Errorf("reading document: %w", err)
	}
	return Parse(string(data)), nil
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
