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

package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
	"github.com/mealpantry/recipe-normalizer/pkg/recipe"
)

// YAMLParser decodes YAML recipe documents: a top-level mapping with name,
// an ingredients sequence of {item, quantity, unit, comment} mappings, a
// preparations sequence of strings, and an optional servings count.
type YAMLParser struct {
	settings settings
}

// NewYAMLParser creates a parser for .yaml and .yml recipe documents.
func NewYAMLParser(opts ...Option) *YAMLParser {
	return &YAMLParser{settings: newSettings(opts...)}
}

// Extensions returns the file extensions handled by this parser.
func (p *YAMLParser) Extensions() []string {
	return []string{".yaml", ".yml"}
}

type yamlDocument struct {
	Name         string           `yaml:"name"`
	Servings     *int             `yaml:"servings"`
	Ingredients  []yamlIngredient `yaml:"ingredients"`
	Preparations []string         `yaml:"preparations"`
}

type yamlIngredient struct {
	Item     string        `yaml:"item"`
	Name     string        `yaml:"name"`
	Quantity *yamlQuantity `yaml:"quantity"`
	Unit     string        `yaml:"unit"`
	Comment  string        `yaml:"comment"`
}

// yamlQuantity accepts YAML numbers as well as numeric strings ("3.5").
type yamlQuantity float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *yamlQuantity) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err == nil {
		*q = yamlQuantity(f)
		return nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	if err != nil {
		return fmt.Errorf("quantity %q is not numeric", node.Value)
	}
	*q = yamlQuantity(f)
	return nil
}

// Parse reads and decodes the YAML recipe file at path.
func (p *YAMLParser) Parse(ctx context.Context, path string) (*recipe.Recipe, error) {
	slog.Debug("parsing YAML recipe", slog.String("path", path))

	data, err := readDocument(ctx, path, p.settings.maxSize)
	if err != nil {
		return nil, err
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse,
			fmt.Sprintf("invalid YAML document: %s", path), err)
	}

	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New(errors.ErrCodeParse,
			fmt.Sprintf("recipe name is required: %s", path))
	}

	rec := recipe.New(doc.Name)
	rec.Servings = doc.Servings

	for _, ing := range doc.Ingredients {
		name := firstNonEmpty(ing.Item, ing.Name)
		if name == "" {
			slog.Info("skipping ingredient without item", slog.String("path", path))
			continue
		}

		out := recipe.Ingredient{
			Name:    name,
			Unit:    strings.TrimSpace(ing.Unit),
			Comment: strings.TrimSpace(ing.Comment),
		}
		if ing.Quantity != nil {
			value := float64(*ing.Quantity)
			out.Quantity = &value
		}

		rec.Ingredients = append(rec.Ingredients, out)
	}

	for _, prep := range doc.Preparations {
		if step := strings.TrimSpace(prep); step != "" {
			rec.Preparations = append(rec.Preparations, step)
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation,
			fmt.Sprintf("invalid recipe in %s", path), err)
	}

	return rec, nil
}
