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
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// Normalization run metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_normalizer_run_duration_seconds",
			Help:    "Time taken to complete a normalization run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	runTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_normalizer_runs_total",
			Help: "Total number of normalization run attempts",
		},
		[]string{"status"}, // success or error
	)

	filesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_normalizer_files_total",
			Help: "Input files handled, by outcome",
		},
		[]string{"status"}, // parsed, skipped, failed
	)

	ingredientConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_normalizer_ingredient_conversions_total",
			Help: "Ingredient unit conversion attempts, by outcome",
		},
		[]string{"status"}, // converted, unrecognized, failed
	)

	recipeCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipe_normalizer_recipes",
			Help: "Number of recipes in the last completed run",
		},
	)
)

// writeMetricsFile exports all registered metrics to path in the Prometheus
// text exposition format. One-shot batch jobs cannot be scraped, so the
// textfile pattern (node_exporter textfile collector) is used instead.
func writeMetricsFile(path string) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %q: %w", mf.GetName(), err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
