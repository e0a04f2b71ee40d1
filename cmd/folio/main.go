// Package main provides the CLI entry point for folio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tmcfarlane/folio/internal/generator"
	"github.com/tmcfarlane/folio/internal/report"
	"github.com/tmcfarlane/folio/pkg/portfolio"
	"github.com/tmcfarlane/folio/pkg/slogctx"
)

// app bundles dependencies so CLI action handlers become testable methods.
type app struct {
	load   func(path string, opts portfolio.LoadOpts) (portfolio.Portfolio, error)
	stdout io.Writer
	isTTY  bool
	format string // resolved output format (pretty, json, text)
}

func main() {
	a := &app{
		load:   portfolio.Load,
		stdout: os.Stdout,
		isTTY:  term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("CI") == "",
	}

	cmd := &cli.Command{
		Name:  "folio",
		Usage: "build a portfolio site from a portfolio document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format (auto, pretty, json, text)",
				Value:   "auto",
				Sources: cli.EnvVars("FOLIO_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("FOLIO_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			a.format = cmd.String("format")
			if a.format == "auto" {
				if a.isTTY {
					a.format = "pretty"
				} else {
					a.format = "text"
				}
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
				return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
			}
			logger, err := report.NewLogger(a.stdout, a.format, level)
			if err != nil {
				return ctx, fmt.Errorf("initializing logger: %w", err)
			}
			slog.SetDefault(logger)
			return slogctx.ContextWithLogger(ctx, logger), nil
		},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "generate pages for every portfolio entry",
				Flags: append(documentFlags(),
					&cli.StringFlag{
						Name:  "templates",
						Usage: "directory holding the HTML templates",
						Value: "_templates",
					},
					&cli.StringFlag{
						Name:  "root",
						Usage: "site root to write pages under",
						Value: ".",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "plan the build without writing files",
					},
					&cli.IntFlag{
						Name:    "parallelism",
						Aliases: []string{"j"},
						Usage:   "max concurrent page jobs (0 = unlimited)",
						Value:   0,
					},
				),
				Action: a.buildAction,
			},
			{
				Name:   "validate",
				Usage:  "check a portfolio document and list its entries",
				Flags:  documentFlags(),
				Action: a.validateAction,
			},
			{
				Name:      "inspect",
				Usage:     "parse a document and print the resulting tree",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "use the strict YAML decoder",
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "dump the tree's Go representation",
					},
				},
				Action: a.inspectAction,
			},
		},
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

// documentFlags returns the shared flag set for commands that load the
// portfolio document.
func documentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "portfolio document to load (.yaml, .yml or .kdl)",
			Value:   "portfolio.yaml",
			Sources: cli.EnvVars("FOLIO_CONFIG"),
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "use the strict YAML decoder instead of the lenient parser",
		},
	}
}

func (a *app) buildAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Int("parallelism") < 0 {
		return fmt.Errorf("invalid value %d for flag --parallelism: must be >= 0", cmd.Int("parallelism"))
	}

	path := cmd.String("config")
	p, err := a.load(path, portfolio.LoadOpts{Strict: cmd.Bool("strict")})
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	res, err := generator.Build(ctx, p, generator.Opts{
		Root:         cmd.String("root"),
		TemplatesDir: cmd.String("templates"),
		DryRun:       cmd.Bool("dry-run"),
		Parallelism:  int(cmd.Int("parallelism")),
	})
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	report.BuildReport(a.stdout, a.format, res, cmd.Bool("dry-run"))
	return nil
}

func (a *app) validateAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	p, err := a.load(path, portfolio.LoadOpts{Strict: cmd.Bool("strict")})
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	report.Summary(a.stdout, a.format, p)
	return nil
}

func (a *app) inspectAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("usage: folio inspect <file>")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	node, err := portfolio.DecodeDocument(data, portfolio.LoadOpts{Strict: cmd.Bool("strict")})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return a.printTree(node, cmd.Bool("raw"))
}
