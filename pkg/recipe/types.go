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

package recipe

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Ingredient is a named quantity of a unit-bearing measurement within a recipe.
// Quantity is optional: count-less ingredients ("salt to taste") carry no
// quantity and no unit. Unit and Comment are omitted from output when empty.
type Ingredient struct {
	Name     string   `json:"name" yaml:"name"`
	Quantity *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Comment  string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Recipe is a named collection of ingredients plus optional metadata.
// Ingredients and Preparations are always serialized, even when empty, so
// consumers can rely on their presence.
type Recipe struct {
	Name         string       `json:"name" yaml:"name"`
	Servings     *int         `json:"servings,omitempty" yaml:"servings,omitempty"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Preparations []string     `json:"preparations" yaml:"preparations"`
}

// New creates a Recipe with the given name and empty, non-nil ingredient and
// preparation lists. The name is trimmed of surrounding whitespace.
func New(name string) *Recipe {
	return &Recipe{
		Name:         strings.TrimSpace(name),
		Ingredients:  make([]Ingredient, 0),
		Preparations: make([]string, 0),
	}
}

// Validate checks if the recipe is properly formed.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("recipe name cannot be empty")
	}
	for i := range r.Ingredients {
		if err := r.Ingredients[i].Validate(); err != nil {
			return fmt.Errorf("ingredient[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks if the ingredient is properly formed. Quantities must be
// finite when present; negative quantities are accepted here and rejected by
// the unit converter for convertible units.
func (i *Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("ingredient name cannot be empty")
	}
	if i.Quantity != nil {
		if math.IsNaN(*i.Quantity) || math.IsInf(*i.Quantity, 0) {
			return fmt.Errorf("ingredient %q quantity must be a finite number", i.Name)
		}
	}
	return nil
}

// HasQuantity reports whether the ingredient carries a quantity.
func (i *Ingredient) HasQuantity() bool {
	return i.Quantity != nil
}

// SetQuantity sets the ingredient quantity to the given value.
func (i *Ingredient) SetQuantity(v float64) {
	i.Quantity = &v
}
