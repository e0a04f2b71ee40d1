// Package portfolio defines the typed portfolio model and its decoders.
//
// A portfolio document describes two ordered groups of entries, initiatives
// and projects. Documents are usually written in the lenient YAML subset
// understood by pkg/yamlite, but a strict YAML decoder and a KDL decoder
// are available behind the same Load entry point.
package portfolio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for portfolio validation.
var (
	ErrDuplicateLink = errors.New("duplicate link target")
	ErrMissingTitle  = errors.New("item with local link missing title")
)

// Item is one initiative or project entry.
type Item struct {
	Title   string
	Link    string
	Summary string
	Tags    []string
}

// Portfolio is the full document.
type Portfolio struct {
	Initiatives []Item
	Projects    []Item
}

// Local reports whether the item links to a page on this site and should
// have one generated. External and empty links are skipped by the
// generator.
func (it Item) Local() bool {
	return strings.HasPrefix(it.Link, "/")
}

// Dir returns the site-relative directory for a local link ("/x/" -> "x").
func (it Item) Dir() string {
	return strings.Trim(it.Link, "/")
}

// Validate checks that locally linked items are generatable and that no two
// items target the same directory. It returns the first problem found.
func (p *Portfolio) Validate() error {
	seen := make(map[string]string)
	for _, group := range [][]Item{p.Initiatives, p.Projects} {
		for i := range group {
			it := &group[i]
			if !it.Local() {
				continue
			}
			if it.Title == "" {
				return fmt.Errorf("link %q: %w", it.Link, ErrMissingTitle)
			}
			dir := it.Dir()
			if prev, ok := seen[dir]; ok {
				return fmt.Errorf(
					"%q and %q both target %s/: %w", prev, it.Title, dir, ErrDuplicateLink,
				)
			}
			seen[dir] = it.Title
		}
	}
	return nil
}
