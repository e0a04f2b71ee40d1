package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmcfarlane/folio/internal/generator"
	"github.com/tmcfarlane/folio/pkg/portfolio"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	p := portfolio.Portfolio{
		Initiatives: []portfolio.Item{
			{Title: "Platform Revamp", Link: "/platform-revamp", Tags: []string{"infra"}},
		},
		Projects: []portfolio.Item{{Title: "folio"}},
	}

	var buf bytes.Buffer
	Summary(&buf, "text", p)

	out := buf.String()
	assert.Contains(t, out, "1 initiative(s), 1 project(s)")
	assert.Contains(t, out, "  - Platform Revamp (/platform-revamp) [infra]")
	assert.Contains(t, out, "  - folio\n")
	assert.NotContains(t, out, "()")
}

func TestSummaryEmptyGroupsOmitted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Summary(&buf, "text", portfolio.Portfolio{})

	out := buf.String()
	assert.Contains(t, out, "0 initiative(s), 0 project(s)")
	assert.NotContains(t, out, "Initiatives:")
	assert.NotContains(t, out, "Projects:")
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	res := generator.Result{
		Generated: []string{"a/index.html"},
		Skipped:   []generator.Skip{{Dir: "keep", Reason: "manually managed"}},
	}

	t.Run("build run", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		BuildReport(&buf, "text", res, false)

		out := buf.String()
		assert.Contains(t, out, "Generated 1 page(s)")
		assert.Contains(t, out, "  BUILD a/index.html")
		assert.Contains(t, out, "  SKIP  keep (manually managed)")
	})

	t.Run("dry run", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		BuildReport(&buf, "text", res, true)
		assert.Contains(t, buf.String(), "Would generate 1 page(s)")
	})

	t.Run("pretty output keeps the text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		BuildReport(&buf, "pretty", res, false)
		assert.Contains(t, buf.String(), "BUILD a/index.html")
	})
}
