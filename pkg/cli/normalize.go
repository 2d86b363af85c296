// Copyright (c) 2025, The Mealpantry Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mealpantry/recipe-normalizer/pkg/logging"
	"github.com/mealpantry/recipe-normalizer/pkg/normalizer"
	"github.com/mealpantry/recipe-normalizer/pkg/parser"
	"github.com/mealpantry/recipe-normalizer/pkg/serializer"
	"github.com/mealpantry/recipe-normalizer/pkg/units"
)

// The built-in version flag claims the -v shorthand; reclaim it for
// --verbose, which the tool's contract promises.
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Convert recipe files into one normalized metric document",
		ArgsUsage:             "<input-dir> <output-file>",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Convert every supported recipe file in a directory into a single
normalized document:
  - XML (.xml) and YAML (.yaml, .yml) inputs
  - imperial weights converted to grams, volumes to milliliters or liters
  - recipes sorted by name in reverse alphabetical order
  - atomic output write (no partial files on failure)

Unreadable or unsupported files are skipped with a warning; the run fails
only when the input directory is unusable or no recipe could be processed.

# Examples

Normalize a directory of recipes to JSON:
  recipe-normalizer ./recipes out.json

Write YAML to stdout, surfacing every warning:
  recipe-normalizer --format yaml -v ./recipes -

Fail fast on the first malformed file:
  recipe-normalizer --strict ./recipes out.json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Surface per-file and per-ingredient warnings",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Debug logging with source locations",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Abort on the first file that fails to parse",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatJSON),
				Usage: fmt.Sprintf("Output format (supported values: %s)",
					serializer.SupportedFormats()),
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write run metrics to this path in Prometheus text format",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Explicit log level (debug, info, warn, error); overrides -v and -d",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Action: runNormalize,
	}
}

// normalizeCmdOptions holds parsed options for the normalize run.
type normalizeCmdOptions struct {
	inputDir    string
	outputFile  string
	format      serializer.Format
	strict      bool
	metricsFile string
	logLevel    string
}

// parseNormalizeCmdOptions parses and validates command arguments and flags.
func parseNormalizeCmdOptions(cmd *cli.Command) (*normalizeCmdOptions, error) {
	args := cmd.Args()
	if args.Len() != 2 {
		return nil, fmt.Errorf("expected <input-dir> <output-file>, got %d argument(s)", args.Len())
	}

	opts := &normalizeCmdOptions{
		inputDir:    args.Get(0),
		outputFile:  args.Get(1),
		format:      serializer.Format(cmd.String("format")),
		strict:      cmd.Bool("strict"),
		metricsFile: cmd.String("metrics-file"),
	}

	if opts.format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported values: %s)",
			opts.format, serializer.SupportedFormats())
	}

	// default surfaces only the summary; -v raises to info, -d to debug,
	// and an explicit --log-level (or LOG_LEVEL) wins over both
	opts.logLevel = "warn"
	if cmd.Bool("verbose") {
		opts.logLevel = "info"
	}
	if cmd.Bool("debug") {
		opts.logLevel = "debug"
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		if _, err := logging.ParseLevel(lvl); err != nil {
			return nil, err
		}
		opts.logLevel = lvl
	}

	return opts, nil
}

func runNormalize(ctx context.Context, cmd *cli.Command) error {
	opts, err := parseNormalizeCmdOptions(cmd)
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", opts.logLevel)

	svc := &normalizer.Service{
		Registry:  parser.Default(),
		Converter: units.NewConverter(),
		Logger:    slog.Default(),
	}

	summary, err := svc.Run(ctx, normalizer.Options{
		InputDir:    opts.inputDir,
		OutputFile:  opts.outputFile,
		Format:      opts.format,
		Strict:      opts.strict,
		MetricsFile: opts.metricsFile,
	})
	if err != nil {
		return err
	}

	reportSummary(summary, opts.outputFile)
	return nil
}

// reportSummary prints the one-line run summary. It goes to stderr so that
// stdout output ("-") stays a clean document stream.
func reportSummary(summary *normalizer.Summary, outputFile string) {
	if summary.WarningCount() > 0 {
		slog.Warn("run completed with warnings",
			slog.Int("recipes", summary.Recipes),
			slog.Int("warnings", summary.WarningCount()),
			slog.Int("filesSkipped", summary.FilesSkipped),
			slog.Int("parseFailures", summary.ParseFailures),
			slog.Int("conversionFailures", summary.ConversionFailures))
	}

	dest := outputFile
	if dest == "" || dest == "-" {
		dest = "stdout"
	}
	fmt.Fprintf(os.Stderr, "normalized %d recipe(s) to %s (%d file(s) skipped, %d warning(s))\n",
		summary.Recipes, dest, summary.FilesSkipped, summary.WarningCount())
}
