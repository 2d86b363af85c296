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
	"log/slog"
	"time"

	"github.com/mealpantry/recipe-normalizer/pkg/parser"
	"github.com/mealpantry/recipe-normalizer/pkg/serializer"
	"github.com/mealpantry/recipe-normalizer/pkg/units"
)

// Service normalizes recipe files from a directory into one output document.
// Zero-value fields fall back to sensible defaults: the built-in parser
// registry, a full-vocabulary converter, and the process default logger.
type Service struct {
	// Registry maps file extensions to format parsers. If nil, the default
	// registry with the built-in XML and YAML parsers is used.
	Registry *parser.Registry

	// Converter translates imperial measurements to metric. If nil, a
	// converter with the full unit vocabulary is used.
	Converter *units.Converter

	// Logger receives run progress and warnings. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Serializer overrides the output destination. If nil, one is built from
	// Options.OutputFile and Options.Format.
	Serializer serializer.Serializer
}

// Options configures a single normalization run.
type Options struct {
	// InputDir is the directory holding recipe files. Enumeration is
	// non-recursive; subdirectories are ignored.
	InputDir string

	// OutputFile is the output path. Empty or "-" writes to stdout.
	OutputFile string

	// Format is the output format. Unknown or empty defaults to JSON.
	Format serializer.Format

	// Strict aborts the run on the first file that fails to parse instead
	// of downgrading the failure to a warning.
	Strict bool

	// MetricsFile, when set, receives run metrics in the Prometheus text
	// exposition format after a successful run.
	MetricsFile string
}

// Summary reports the outcome of one normalization run.
type Summary struct {
	RunID                string        `json:"runId" yaml:"runId"`
	Recipes              int           `json:"recipes" yaml:"recipes"`
	FilesSeen            int           `json:"filesSeen" yaml:"filesSeen"`
	FilesSkipped         int           `json:"filesSkipped" yaml:"filesSkipped"`
	ParseFailures        int           `json:"parseFailures" yaml:"parseFailures"`
	IngredientsConverted int           `json:"ingredientsConverted" yaml:"ingredientsConverted"`
	ConversionFailures   int           `json:"conversionFailures" yaml:"conversionFailures"`
	UnrecognizedUnits    int           `json:"unrecognizedUnits" yaml:"unrecognizedUnits"`
	Warnings             []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Duration             time.Duration `json:"duration" yaml:"duration"`
}

// WarningCount returns the number of warnings recorded during the run.
func (s *Summary) WarningCount() int {
	return len(s.Warnings)
}
