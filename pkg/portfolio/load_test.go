package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("yaml by default", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "portfolio.yaml", "projects:\n  - title: x\n    link: /x\n")
		got, err := Load(path, LoadOpts{})
		require.NoError(t, err)
		assert.Equal(t, Portfolio{Projects: []Item{{Title: "x", Link: "/x"}}}, got)
	})

	t.Run("lenient mode swallows malformed lines", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "portfolio.yaml", "garbage line\nprojects:\n  - title: x\n")
		got, err := Load(path, LoadOpts{})
		require.NoError(t, err)
		assert.Len(t, got.Projects, 1)
	})

	t.Run("strict mode rejects malformed documents", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "portfolio.yaml", "projects: [unclosed\n")
		_, err := Load(path, LoadOpts{Strict: true})
		require.Error(t, err)
	})

	t.Run("kdl by extension", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "portfolio.kdl", `project "x" { link "/x" }`)
		got, err := Load(path, LoadOpts{})
		require.NoError(t, err)
		assert.Equal(t, Portfolio{Projects: []Item{{Title: "x", Link: "/x"}}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), LoadOpts{})
		require.Error(t, err)
	})
}
