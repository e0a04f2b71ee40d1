// Package generator renders portfolio items into static pages.
//
// Every locally linked item gets an index.html under the site root,
// produced from an HTML template by placeholder substitution. Pages whose
// existing index.html declares itself manually managed are never touched.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tmcfarlane/folio/pkg/portfolio"
	"github.com/tmcfarlane/folio/pkg/slogctx"
)

const (
	// managedMarker in the head of an existing index.html means the page
	// is maintained by hand and must never be overwritten.
	managedMarker = "<!-- managed: manual -->"
	// markerWindow is how much of an existing file is inspected for the marker.
	markerWindow = 500

	placeholderTitle = "<title>Case Study | Portfolio</title>"
	placeholderDesc  = `<meta name="description" content="A strategic initiative case study.">`
)

// Template names by item group.
const (
	TemplateCaseStudy = "case-study"
	TemplateProject   = "project"
)

// Opts configures a build.
type Opts struct {
	// Root is the site root; pages are written beneath it.
	Root string
	// TemplatesDir holds the HTML templates, one <name>.html each.
	TemplatesDir string
	// DryRun plans the build without writing anything.
	DryRun bool
	// Parallelism caps concurrent page jobs; 0 means no cap.
	Parallelism int
}

// Skip records a page that was not generated and why.
type Skip struct {
	Dir    string
	Reason string
}

// Result lists what a build produced, in item order: initiatives first,
// then projects.
type Result struct {
	Generated []string
	Skipped   []Skip
}

// Build generates a page for every item in the portfolio. Skips (external
// links, manually managed pages, missing templates) are collected in the
// Result; filesystem failures abort the build.
func Build(ctx context.Context, p portfolio.Portfolio, opts Opts) (Result, error) {
	if opts.Root == "" {
		return Result{}, errors.New("generator: Opts.Root must not be empty")
	}
	if opts.TemplatesDir == "" {
		return Result{}, errors.New("generator: Opts.TemplatesDir must not be empty")
	}

	type job struct {
		item     portfolio.Item
		template string
	}
	var jobs []job
	for _, it := range p.Initiatives {
		jobs = append(jobs, job{item: it, template: TemplateCaseStudy})
	}
	for _, it := range p.Projects {
		jobs = append(jobs, job{item: it, template: TemplateProject})
	}

	templates := newTemplateSet(opts.TemplatesDir)
	outcomes := make([]outcome, len(jobs))

	ctx = slogctx.With(ctx, slog.String("component", "generator"))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for i, jb := range jobs {
		g.Go(func() error {
			out, err := generatePage(ctx, jb.item, jb.template, templates, opts)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for _, out := range outcomes {
		switch {
		case out.path != "":
			res.Generated = append(res.Generated, out.path)
		case out.skip != nil:
			res.Skipped = append(res.Skipped, *out.skip)
		}
	}
	return res, nil
}

// outcome is the per-item build result: a written path or a skip.
type outcome struct {
	path string
	skip *Skip
}

func generatePage(
	ctx context.Context,
	it portfolio.Item,
	template string,
	templates *templateSet,
	opts Opts,
) (outcome, error) {
	log := slogctx.FromContext(ctx)

	if !it.Local() {
		return outcome{skip: &Skip{Dir: it.Link, Reason: "no local link"}}, nil
	}

	dir := it.Dir()
	targetDir := filepath.Join(opts.Root, filepath.FromSlash(dir))
	targetFile := filepath.Join(targetDir, "index.html")

	managed, err := manuallyManaged(targetDir)
	if err != nil {
		return outcome{}, err
	}
	if managed {
		log.LogAttrs(ctx, slog.LevelInfo, "page skipped",
			slog.String("dir", dir), slog.String("reason", "manually managed"))
		return outcome{skip: &Skip{Dir: dir, Reason: "manually managed"}}, nil
	}

	body, ok := templates.load(template)
	if !ok {
		log.LogAttrs(ctx, slog.LevelWarn, "template missing",
			slog.String("template", template), slog.String("dir", dir))
		return outcome{skip: &Skip{Dir: dir, Reason: "template " + template + " not found"}}, nil
	}

	html := renderPage(body, it)

	if opts.DryRun {
		log.LogAttrs(ctx, slog.LevelInfo, "page planned",
			slog.String("path", targetFile), slog.String("template", template))
		return outcome{path: targetFile}, nil
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return outcome{}, fmt.Errorf("creating %s: %w", targetDir, err)
	}
	if err := os.WriteFile(targetFile, []byte(html), 0o644); err != nil {
		return outcome{}, fmt.Errorf("writing %s: %w", targetFile, err)
	}

	log.LogAttrs(ctx, slog.LevelInfo, "page generated",
		slog.String("path", targetFile), slog.String("template", template))
	return outcome{path: targetFile}, nil
}

// manuallyManaged reports whether dir already holds an index.html whose
// head carries the manual marker. Only the first markerWindow bytes count.
func manuallyManaged(dir string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", dir, err)
	}
	head := data
	if len(head) > markerWindow {
		head = head[:markerWindow]
	}
	return strings.Contains(string(head), managedMarker), nil
}

// renderPage substitutes the template's title and description placeholders
// with the item's fields. Templates without the placeholders pass through
// unchanged.
func renderPage(body string, it portfolio.Item) string {
	title := it.Title
	if title == "" {
		title = "Page"
	}
	desc := it.Summary
	if desc == "" {
		desc = title
	}
	out := strings.ReplaceAll(body, placeholderTitle,
		"<title>"+title+" | Portfolio</title>")
	return strings.ReplaceAll(out, placeholderDesc,
		`<meta name="description" content="`+desc+`">`)
}

// templateSet lazily loads template files and caches them, including
// negative results, so concurrent page jobs share one read per template.
type templateSet struct {
	dir     string
	mu      sync.Mutex
	cache   map[string]string
	missing map[string]bool
}

func newTemplateSet(dir string) *templateSet {
	return &templateSet{
		dir:     dir,
		cache:   map[string]string{},
		missing: map[string]bool{},
	}
}

// load returns the template body for name, or ok=false when the template
// file does not exist.
func (ts *templateSet) load(name string) (string, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if body, ok := ts.cache[name]; ok {
		return body, true
	}
	if ts.missing[name] {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(ts.dir, name+".html"))
	if err != nil {
		ts.missing[name] = true
		return "", false
	}
	ts.cache[name] = string(data)
	return string(data), true
}
