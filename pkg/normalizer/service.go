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

package normalizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
	"github.com/mealpantry/recipe-normalizer/pkg/parser"
	"github.com/mealpantry/recipe-normalizer/pkg/recipe"
	"github.com/mealpantry/recipe-normalizer/pkg/serializer"
	"github.com/mealpantry/recipe-normalizer/pkg/units"
)

// Run executes one normalization pass over opts.InputDir and writes the
// sorted result to opts.OutputFile. The returned Summary is non-nil whenever
// the run reached file processing, including on failure, so callers can
// report partial progress.
func (s *Service) Run(ctx context.Context, opts Options) (*Summary, error) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	sum := &Summary{RunID: uuid.NewString()}
	logger := s.logger().With(slog.String("runId", sum.RunID))

	recipes, err := s.collect(ctx, opts, sum, logger)
	if err != nil {
		runTotal.WithLabelValues("error").Inc()
		return sum, err
	}

	if len(recipes) == 0 {
		runTotal.WithLabelValues("error").Inc()
		return sum, errors.NewWithContext(errors.ErrCodeEmptyInput,
			fmt.Sprintf("no recipes found in %q", opts.InputDir),
			map[string]any{"filesSeen": sum.FilesSeen, "filesSkipped": sum.FilesSkipped})
	}

	sortRecipes(recipes)

	if err := s.write(ctx, opts, recipes); err != nil {
		runTotal.WithLabelValues("error").Inc()
		return sum, err
	}

	sum.Recipes = len(recipes)
	sum.Duration = time.Since(start)

	runTotal.WithLabelValues("success").Inc()
	recipeCount.Set(float64(sum.Recipes))

	if opts.MetricsFile != "" {
		if err := writeMetricsFile(opts.MetricsFile); err != nil {
			// metrics export is best-effort; the run itself succeeded
			logger.Warn("failed to write metrics file",
				slog.String("path", opts.MetricsFile), slog.String("error", err.Error()))
		}
	}

	logger.Info("normalization run complete",
		slog.Int("recipes", sum.Recipes),
		slog.Int("filesSeen", sum.FilesSeen),
		slog.Int("filesSkipped", sum.FilesSkipped),
		slog.Int("warnings", sum.WarningCount()),
		slog.Duration("duration", sum.Duration))

	return sum, nil
}

// collect enumerates the input directory in filename order and returns every
// recipe that parsed, with ingredient units already normalized.
func (s *Service) collect(ctx context.Context, opts Options, sum *Summary, logger *slog.Logger) ([]*recipe.Recipe, error) {
	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("cannot read input directory %q", opts.InputDir), err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeIO,
			fmt.Sprintf("input path %q is not a directory", opts.InputDir))
	}

	// os.ReadDir returns entries sorted by filename, which keeps run output
	// deterministic and encounter order reproducible.
	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("cannot read input directory %q", opts.InputDir), err)
	}

	registry := s.Registry
	if registry == nil {
		registry = parser.Default()
	}

	var recipes []*recipe.Recipe
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(opts.InputDir, entry.Name())
		sum.FilesSeen++

		p, err := registry.ParserFor(entry.Name())
		if err != nil {
			sum.FilesSkipped++
			filesTotal.WithLabelValues("skipped").Inc()
			s.warn(sum, logger, fmt.Sprintf("skipped %s: %v", path, err))
			continue
		}

		rec, err := p.Parse(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if opts.Strict {
				return nil, err
			}
			sum.ParseFailures++
			filesTotal.WithLabelValues("failed").Inc()
			s.warn(sum, logger, fmt.Sprintf("failed to parse %s: %v", path, err))
			continue
		}

		s.convertIngredients(rec, sum, logger)
		filesTotal.WithLabelValues("parsed").Inc()
		logger.Debug("processed recipe file",
			slog.String("path", path), slog.String("recipe", rec.Name))
		recipes = append(recipes, rec)
	}

	return recipes, nil
}

// convertIngredients rewrites each quantity-bearing ingredient in place with
// its metric equivalent and the presentation rounding applied. A conversion
// failure leaves the ingredient exactly as parsed so the output stays valid.
func (s *Service) convertIngredients(rec *recipe.Recipe, sum *Summary, logger *slog.Logger) {
	converter := s.Converter
	if converter == nil {
		converter = units.NewConverter()
	}

	for i := range rec.Ingredients {
		ing := &rec.Ingredients[i]
		if !ing.HasQuantity() {
			continue
		}

		result, err := converter.Convert(*ing.Quantity, ing.Unit)
		if err != nil {
			sum.ConversionFailures++
			ingredientConversionsTotal.WithLabelValues("failed").Inc()
			s.warn(sum, logger, fmt.Sprintf(
				"recipe %q ingredient %q left unconverted: %v", rec.Name, ing.Name, err))
			continue
		}

		ing.SetQuantity(units.Round(result.Value))
		ing.Unit = result.Unit

		switch {
		case converter.Recognized(ing.Unit):
			sum.IngredientsConverted++
			ingredientConversionsTotal.WithLabelValues("converted").Inc()
		case ing.Unit != "":
			sum.UnrecognizedUnits++
			ingredientConversionsTotal.WithLabelValues("unrecognized").Inc()
			logger.Info("unrecognized unit passed through",
				slog.String("recipe", rec.Name),
				slog.String("ingredient", ing.Name),
				slog.String("unit", ing.Unit))
		}
	}
}

// write serializes the recipes to the configured destination. File output is
// atomic: the data lands in a temp file that is renamed over the target on
// Close.
func (s *Service) write(ctx context.Context, opts Options, recipes []*recipe.Recipe) error {
	format := opts.Format
	if format == "" {
		format = serializer.FormatJSON
	}

	ser := s.Serializer
	if ser == nil {
		var err error
		ser, err = serializer.NewFileWriterOrStdout(format, opts.OutputFile)
		if err != nil {
			return errors.Wrap(errors.ErrCodeIO,
				fmt.Sprintf("cannot open output %q", opts.OutputFile), err)
		}
	}

	serr := ser.Serialize(ctx, recipes)
	var cerr error
	if closer, ok := ser.(serializer.Closer); ok {
		cerr = closer.Close()
	}
	if serr != nil {
		return errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("failed to write output %q", opts.OutputFile), serr)
	}
	if cerr != nil {
		return errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("failed to commit output %q", opts.OutputFile), cerr)
	}
	return nil
}

func (s *Service) warn(sum *Summary, logger *slog.Logger, msg string) {
	sum.Warnings = append(sum.Warnings, msg)
	// individual warnings surface at info level; default warn-level runs
	// see only the end-of-run summary
	logger.Info(msg)
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// sortRecipes orders recipes by case-folded name in reverse alphabetical
// order. The sort is stable, so recipes with equal names keep their
// encounter order.
func sortRecipes(recipes []*recipe.Recipe) {
	folder := cases.Fold()
	type keyed struct {
		key string
		rec *recipe.Recipe
	}
	items := make([]keyed, len(recipes))
	for i, r := range recipes {
		items[i] = keyed{key: folder.String(r.Name), rec: r}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key > items[j].key
	})
	for i := range items {
		recipes[i] = items[i].rec
	}
}
