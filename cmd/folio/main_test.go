package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tmcfarlane/folio/pkg/portfolio"
)

// fakeLoad returns a canned portfolio (or error) regardless of path.
func fakeLoad(p portfolio.Portfolio, err error) func(string, portfolio.LoadOpts) (portfolio.Portfolio, error) {
	return func(string, portfolio.LoadOpts) (portfolio.Portfolio, error) {
		return p, err
	}
}

// runCommand wires the action into a throwaway command tree and runs it
// with the given CLI arguments.
func runCommand(t *testing.T, sub *cli.Command, args ...string) error {
	t.Helper()
	root := &cli.Command{Name: "folio", Commands: []*cli.Command{sub}}
	return root.Run(context.Background(), append([]string{"folio"}, args...))
}

func TestValidateAction(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := &app{
			load: fakeLoad(portfolio.Portfolio{
				Projects: []portfolio.Item{{Title: "folio", Link: "/folio"}},
			}, nil),
			stdout: &buf,
			format: "text",
		}

		err := runCommand(t, &cli.Command{
			Name:   "validate",
			Flags:  documentFlags(),
			Action: a.validateAction,
		}, "validate")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "folio (/folio)")
	})

	t.Run("load error propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		a := &app{load: fakeLoad(portfolio.Portfolio{}, boom), stdout: &bytes.Buffer{}, format: "text"}

		err := runCommand(t, &cli.Command{
			Name:   "validate",
			Flags:  documentFlags(),
			Action: a.validateAction,
		}, "validate")
		require.ErrorIs(t, err, boom)
	})

	t.Run("validation error propagates", func(t *testing.T) {
		t.Parallel()

		a := &app{
			load: fakeLoad(portfolio.Portfolio{
				Projects: []portfolio.Item{
					{Title: "a", Link: "/same"},
					{Title: "b", Link: "/same"},
				},
			}, nil),
			stdout: &bytes.Buffer{},
			format: "text",
		}

		err := runCommand(t, &cli.Command{
			Name:   "validate",
			Flags:  documentFlags(),
			Action: a.validateAction,
		}, "validate")
		require.ErrorIs(t, err, portfolio.ErrDuplicateLink)
	})
}

func TestBuildAction(t *testing.T) {
	t.Parallel()

	buildFlags := func() []cli.Flag {
		return append(documentFlags(),
			&cli.StringFlag{Name: "templates"},
			&cli.StringFlag{Name: "root"},
			&cli.BoolFlag{Name: "dry-run"},
			&cli.IntFlag{Name: "parallelism", Aliases: []string{"j"}},
		)
	}

	t.Run("writes pages and reports", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		templates := filepath.Join(root, "_templates")
		require.NoError(t, os.Mkdir(templates, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(templates, "project.html"), []byte("<html></html>"), 0o644,
		))

		var buf bytes.Buffer
		a := &app{
			load: fakeLoad(portfolio.Portfolio{
				Projects: []portfolio.Item{{Title: "x", Link: "/x"}},
			}, nil),
			stdout: &buf,
			format: "text",
		}

		err := runCommand(t, &cli.Command{
			Name:   "build",
			Flags:  buildFlags(),
			Action: a.buildAction,
		}, "build", "--root", root, "--templates", templates)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(root, "x", "index.html"))
		assert.Contains(t, buf.String(), "Generated 1 page(s)")
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		templates := filepath.Join(root, "_templates")
		require.NoError(t, os.Mkdir(templates, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(templates, "project.html"), []byte("<html></html>"), 0o644,
		))

		var buf bytes.Buffer
		a := &app{
			load: fakeLoad(portfolio.Portfolio{
				Projects: []portfolio.Item{{Title: "x", Link: "/x"}},
			}, nil),
			stdout: &buf,
			format: "text",
		}

		err := runCommand(t, &cli.Command{
			Name:   "build",
			Flags:  buildFlags(),
			Action: a.buildAction,
		}, "build", "--root", root, "--templates", templates, "--dry-run")
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(root, "x", "index.html"))
		assert.Contains(t, buf.String(), "Would generate 1 page(s)")
	})

	t.Run("negative parallelism rejected", func(t *testing.T) {
		t.Parallel()

		a := &app{load: fakeLoad(portfolio.Portfolio{}, nil), stdout: &bytes.Buffer{}, format: "text"}

		err := runCommand(t, &cli.Command{
			Name:   "build",
			Flags:  buildFlags(),
			Action: a.buildAction,
		}, "build", "--parallelism=-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parallelism")
	})
}

func TestInspectAction(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the document in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("z: 1\na: two\n"), 0o644))

		var buf bytes.Buffer
		a := &app{stdout: &buf, format: "text"}

		err := runCommand(t, &cli.Command{
			Name: "inspect",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "strict"},
				&cli.BoolFlag{Name: "raw"},
			},
			Action: a.inspectAction,
		}, "inspect", path)
		require.NoError(t, err)
		assert.Equal(t, "z: 1\na: two\n", buf.String())
	})

	t.Run("raw dump names the node types", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

		var buf bytes.Buffer
		a := &app{stdout: &buf, format: "text"}

		err := runCommand(t, &cli.Command{
			Name: "inspect",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "strict"},
				&cli.BoolFlag{Name: "raw"},
			},
			Action: a.inspectAction,
		}, "inspect", path, "--raw")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "yamlite.Node")
	})

	t.Run("missing argument", func(t *testing.T) {
		t.Parallel()

		a := &app{stdout: &bytes.Buffer{}, format: "text"}
		err := runCommand(t, &cli.Command{
			Name: "inspect",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "strict"},
				&cli.BoolFlag{Name: "raw"},
			},
			Action: a.inspectAction,
		}, "inspect")
		require.Error(t, err)
	})
}
