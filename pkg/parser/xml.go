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
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
	"github.com/mealpantry/recipe-normalizer/pkg/recipe"
)

// XMLParser decodes XML recipe documents. The expected shape is a <root>
// element with a <name> child, one repeated <ingredients> element per
// ingredient, one repeated <preparations> element per instruction, and an
// optional <servings> element.
type XMLParser struct {
	settings settings
}

// NewXMLParser creates a parser for .xml recipe documents.
func NewXMLParser(opts ...Option) *XMLParser {
	return &XMLParser{settings: newSettings(opts...)}
}

// Extensions returns the file extensions handled by this parser.
func (p *XMLParser) Extensions() []string {
	return []string{".xml"}
}

// carrier structs for structural decoding; quantities arrive as strings so
// that non-numeric values can be reported as parse failures rather than
// silently zeroed by the decoder.
type xmlDocument struct {
	XMLName      xml.Name        `xml:"root"`
	Name         string          `xml:"name"`
	Servings     string          `xml:"servings"`
	Ingredients  []xmlIngredient `xml:"ingredients"`
	Preparations []string        `xml:"preparations"`
}

type xmlIngredient struct {
	Item     string `xml:"item"`
	Name     string `xml:"name"`
	Quantity string `xml:"quantity"`
	Unit     string `xml:"unit"`
	Comment  string `xml:"comment"`
}

// Parse reads and decodes the XML recipe file at path.
func (p *XMLParser) Parse(ctx context.Context, path string) (*recipe.Recipe, error) {
	slog.Debug("parsing XML recipe", slog.String("path", path))

	data, err := readDocument(ctx, path, p.settings.maxSize)
	if err != nil {
		return nil, err
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse,
			fmt.Sprintf("invalid XML document: %s", path), err)
	}

	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New(errors.ErrCodeParse,
			fmt.Sprintf("recipe name is required: %s", path))
	}

	rec := recipe.New(doc.Name)

	if s := strings.TrimSpace(doc.Servings); s != "" {
		servings, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse,
				fmt.Sprintf("servings %q is not a whole number: %s", doc.Servings, path), err)
		}
		rec.Servings = &servings
	}

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

		if q := strings.TrimSpace(ing.Quantity); q != "" {
			value, err := strconv.ParseFloat(q, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeParse,
					fmt.Sprintf("ingredient %q quantity %q is not numeric: %s", name, ing.Quantity, path), err)
			}
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
