package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmcfarlane/folio/pkg/yamlite"
)

// LoadOpts controls how a portfolio document is decoded.
type LoadOpts struct {
	// Strict decodes YAML documents with a full YAML decoder, surfacing
	// syntax errors instead of the default best-effort parse.
	Strict bool
}

// Load reads and decodes the portfolio document at path. The format is
// chosen by extension: .kdl documents use the KDL decoder; everything else
// is treated as YAML, parsed leniently by default or strictly with
// opts.Strict.
func Load(path string, opts LoadOpts) (Portfolio, error) {
	if strings.EqualFold(filepath.Ext(path), ".kdl") {
		return loadKDLFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := DecodeDocument(data, opts)
	if err != nil {
		return Portfolio{}, err
	}
	return FromNode(doc), nil
}

// DecodeDocument parses raw YAML bytes into a document tree, lenient or
// strict per opts.
func DecodeDocument(data []byte, opts LoadOpts) (yamlite.Node, error) {
	if opts.Strict {
		return DecodeStrict(data)
	}
	return yamlite.Parse(string(data)), nil
}

func loadKDLFile(path string) (p Portfolio, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return LoadKDL(f, path)
}
