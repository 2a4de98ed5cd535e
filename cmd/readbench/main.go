// Package main provides the CLI entry point for readbench.
package main

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/readbench/pkg/adapters/logger"
	"github.com/user/readbench/pkg/adapters/osfilesystem"
	"github.com/user/readbench/pkg/config"
	"github.com/user/readbench/pkg/ports"
	"github.com/user/readbench/pkg/readbench"
	"github.com/user/readbench/pkg/summarizer"
	"github.com/user/readbench/pkg/wholefile"
)

var version = "dev"

// Exit codes.
const (
	exitError     = 1
	exitOpenError = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var openErr *wholefile.FileOpenError
		if errors.As(err, &openErr) {
			os.Exit(exitOpenError)
		}
		os.Exit(exitError)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "readbench",
		Usage:   l10n.T("Benchmark ways of reading a whole file into memory"),
		Version: version,
		Writer:  out,
		Commands: []*cli.Command{
			runCommand(),
			readCommand(),
			listCommand(),
			versionCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     l10n.T("Benchmark read strategies against a file"),
		ArgsUsage: "[PATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Input")},
			&cli.StringSliceFlag{Name: "strategy", Aliases: []string{"s"}, Usage: l10n.T("Strategy to run (repeatable, default: all enabled)"), Category: l10n.T("Measurement")},
			&cli.StringFlag{Name: "benchtime", Aliases: []string{"t"}, Usage: l10n.T("Time or iterations per run (e.g. 1s, 100x)"), Category: l10n.T("Measurement")},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: l10n.T("Runs per strategy"), Category: l10n.T("Measurement")},
			&cli.BoolFlag{Name: "no-verify", Usage: l10n.T("Skip the cross-strategy content check"), Category: l10n.T("Measurement")},
			&cli.Int64Flag{Name: "create-size", Usage: l10n.T("Generate the file with this many bytes if it is missing"), Category: l10n.T("Input")},
			&cli.Int64Flag{Name: "seed", Usage: l10n.T("Seed for generated file content"), Category: l10n.T("Input")},
			&cli.BoolFlag{Name: "keep-fixture", Usage: l10n.T("Keep a generated file after the run"), Category: l10n.T("Input")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a Markdown summary to this file"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "chart", Usage: l10n.T("Write a PNG bar chart to this file"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(cfg.LogLevelValue())
	}

	result, err := readbench.Run(c.Context, cfg, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted, shutting down...")
		}
		return err
	}

	summary := summarizer.NewBuilder().
		WithFile(result.Path, result.Size, result.FixtureCreated).
		WithSettings(cfg.BenchTime, cfg.Count, result.Verified).
		WithChecks(result.Checks).
		WithResults(result.Results).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)

	if cfg.Output.Summary != "" {
		writer := summarizer.NewWriter(formatter, osfilesystem.New())
		if err := writer.Write(cfg.Output.Summary, summary); err != nil {
			log.Error("Failed to write summary: %s", err)
			return err
		}
		log.Info("Summary saved to %s", cfg.Output.Summary)
		return nil
	}

	fmt.Fprint(c.App.Writer, formatter.Format(summary))
	return nil
}

// buildConfig loads the optional config file and applies flag overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	base := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return base, fmt.Errorf("load config: %w", err)
		}
		base = loaded
	}

	builder := readbench.NewConfigBuilderFrom(base)

	if c.Args().Len() > 1 {
		return base, fmt.Errorf("%w: expected at most one path, got %d", config.ErrInvalidConfig, c.Args().Len())
	}
	if path := c.Args().First(); path != "" {
		builder.WithPath(path)
	}
	if c.IsSet("strategy") {
		builder.WithStrategies(c.StringSlice("strategy")...)
	}
	if c.IsSet("benchtime") {
		builder.WithBenchTime(c.String("benchtime"))
	}
	if c.IsSet("count") {
		builder.WithCount(c.Int("count"))
	}
	if c.Bool("no-verify") {
		builder.WithVerify(false)
	}
	if c.IsSet("create-size") || c.IsSet("seed") || c.IsSet("keep-fixture") {
		fixture := base.Fixture
		if c.IsSet("create-size") {
			fixture.Size = c.Int64("create-size")
		}
		if c.IsSet("seed") {
			fixture.Seed = c.Int64("seed")
		}
		if c.IsSet("keep-fixture") {
			fixture.Keep = c.Bool("keep-fixture")
		}
		builder.WithFixture(fixture.Size, fixture.Seed, fixture.Keep)
	}
	if c.IsSet("summary") {
		builder.WithSummary(c.String("summary"))
	}
	if c.IsSet("chart") {
		builder.WithChart(c.String("chart"))
	}
	if c.IsSet("log-level") {
		builder.WithLogLevel(c.String("log-level"))
	}

	return builder.Build(), nil
}

func readCommand() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     l10n.T("Read a file once and print its size and SHA-256"),
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "strategy", Aliases: []string{"s"}, Value: wholefile.NameStdio, Usage: l10n.T("Strategy to read with")},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("Exactly one path is required"), exitError)
			}
			strategy, err := wholefile.Lookup(c.String("strategy"))
			if err != nil {
				return err
			}

			path := c.Args().First()
			data, err := strategy.Read(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%s\t%d\t%x\n", path, len(data), sha256.Sum256(data))
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: l10n.T("List available read strategies"),
		Action: func(c *cli.Context) error {
			for _, s := range wholefile.Strategies() {
				enabled := l10n.T("default")
				if !s.Default {
					enabled = l10n.T("opt-in")
				}
				fmt.Fprintf(c.App.Writer, "%-12s %-8s %s\n", s.Name, enabled, l10n.T(s.Description))
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("readbench version %s", version))
			return nil
		},
	}
}
