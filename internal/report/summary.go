package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmcfarlane/folio/internal/generator"
	"github.com/tmcfarlane/folio/pkg/portfolio"
)

var (
	_headingStyle = lipgloss.NewStyle().Bold(true)
	_okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	_skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // dim
)

// Summary prints the portfolio's contents, one line per item.
func Summary(w io.Writer, format string, p portfolio.Portfolio) {
	pretty := format == "pretty"
	heading(w, pretty, fmt.Sprintf(
		"Portfolio: %d initiative(s), %d project(s)",
		len(p.Initiatives), len(p.Projects),
	))
	group(w, pretty, "Initiatives", p.Initiatives)
	group(w, pretty, "Projects", p.Projects)
}

func group(w io.Writer, pretty bool, name string, items []portfolio.Item) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s:\n", name)
	for _, it := range items {
		line := "  - " + it.Title
		if it.Link != "" {
			line += " (" + it.Link + ")"
		}
		if len(it.Tags) > 0 {
			tags := "[" + strings.Join(it.Tags, ", ") + "]"
			if pretty {
				tags = _skipStyle.Render(tags)
			}
			line += " " + tags
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

// BuildReport prints the outcome of a build run.
func BuildReport(w io.Writer, format string, res generator.Result, dryRun bool) {
	pretty := format == "pretty"

	verb := "Generated"
	if dryRun {
		verb = "Would generate"
	}
	heading(w, pretty, fmt.Sprintf("%s %d page(s)", verb, len(res.Generated)))

	for _, path := range res.Generated {
		line := "  BUILD " + path
		if pretty {
			line = _okStyle.Render(line)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	for _, s := range res.Skipped {
		line := "  SKIP  " + s.Dir + " (" + s.Reason + ")"
		if pretty {
			line = _skipStyle.Render(line)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func heading(w io.Writer, pretty bool, text string) {
	if pretty {
		text = _headingStyle.Render(text)
	}
	_, _ = fmt.Fprintln(w, text)
}
