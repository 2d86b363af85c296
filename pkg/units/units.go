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

package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
)

// Kind represents a unit family whose members are mutually convertible.
type Kind string

// String returns the string representation of the unit Kind.
func (k Kind) String() string {
	return string(k)
}

const (
	KindWeight Kind = "weight"
	KindVolume Kind = "volume"
)

// Canonical output unit symbols.
const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitLiter      = "l"
)

// Conversion factors to the base unit of each family (grams, milliliters).
// Weight uses standard avoirdupois factors; volume uses US customary
// definitions with the cooking-friendly cup of exactly 240 ml.
const (
	gramsPerPound     = 453.592
	gramsPerOunce     = 28.3495
	gramsPerKilogram  = 1000
	gramsPerMilligram = 0.001

	mlPerGallon     = 3785.41
	mlPerQuart      = 946.353
	mlPerPint       = 473.176
	mlPerCup        = 240
	mlPerFluidOunce = 29.5735
	mlPerTablespoon = 14.7868
	mlPerTeaspoon   = 4.92892
	mlPerLiter      = 1000
	mlPerDeciliter  = 100
	mlPerCentiliter = 10
)

// volumeThresholdML is the crossover point at which volumes are expressed
// in liters instead of milliliters.
const volumeThresholdML = 1000

// Quantity is a measured amount with its unit symbol.
type Quantity struct {
	Value float64
	Unit  string
}

type unitDef struct {
	kind   Kind
	factor float64
}

// canonical unit vocabulary, keyed by canonical name.
var unitDefs = map[string]unitDef{
	"pound":     {KindWeight, gramsPerPound},
	"ounce":     {KindWeight, gramsPerOunce},
	"gram":      {KindWeight, 1},
	"kilogram":  {KindWeight, gramsPerKilogram},
	"milligram": {KindWeight, gramsPerMilligram},

	"gallon":     {KindVolume, mlPerGallon},
	"quart":      {KindVolume, mlPerQuart},
	"pint":       {KindVolume, mlPerPint},
	"cup":        {KindVolume, mlPerCup},
	"floz":       {KindVolume, mlPerFluidOunce},
	"tablespoon": {KindVolume, mlPerTablespoon},
	"teaspoon":   {KindVolume, mlPerTeaspoon},
	"milliliter": {KindVolume, 1},
	"liter":      {KindVolume, mlPerLiter},
	"deciliter":  {KindVolume, mlPerDeciliter},
	"centiliter": {KindVolume, mlPerCentiliter},
}

// unitAliases maps accepted spellings (lowercased) to canonical names.
// Includes plural and abbreviated forms plus the legacy "gr" gram symbol.
var unitAliases = map[string]string{
	"pounds": "pound", "lb": "pound", "lbs": "pound",
	"ounces": "ounce", "oz": "ounce",
	"grams": "gram", "g": "gram", "gr": "gram",
	"kilograms": "kilogram", "kg": "kilogram", "kgs": "kilogram",
	"milligrams": "milligram", "mg": "milligram",

	"gallons": "gallon", "gal": "gallon",
	"quarts": "quart", "qt": "quart",
	"pints": "pint", "pt": "pint",
	"cups": "cup",
	"fl oz": "floz", "fl. oz.": "floz", "fl. oz": "floz", "fl oz.": "floz",
	"fluid ounce": "floz", "fluid ounces": "floz",
	"tablespoons": "tablespoon", "tbsp": "tablespoon", "tbs": "tablespoon",
	"teaspoons": "teaspoon", "tsp": "teaspoon",
	"milliliters": "milliliter", "millilitre": "milliliter", "millilitres": "milliliter", "ml": "milliliter",
	"liters": "liter", "litre": "liter", "litres": "liter", "l": "liter",
	"deciliters": "deciliter", "dl": "deciliter",
	"centiliters": "centiliter", "cl": "centiliter",
}

// Converter translates imperial cooking measurements to metric.
// The zero-cost constructor builds a merged lookup table; a Converter is
// stateless afterward and safe for concurrent use.
type Converter struct {
	lookup map[string]unitDef
}

// NewConverter creates a Converter with the full unit vocabulary.
func NewConverter() *Converter {
	lookup := make(map[string]unitDef, len(unitDefs)+len(unitAliases))
	for name, def := range unitDefs {
		lookup[name] = def
	}
	for alias, canonical := range unitAliases {
		lookup[alias] = unitDefs[canonical]
	}
	return &Converter{lookup: lookup}
}

// Convert translates a quantity to its metric equivalent. Weight units
// convert to grams; volume units convert to milliliters, re-expressed in
// liters at or above one liter. Units outside the vocabulary (and empty
// units) pass through unchanged. The result is exact; apply Round to
// produce presentation values.
//
// Convert fails only when the unit is recognized as convertible but the
// quantity is negative or not finite.
func (c *Converter) Convert(quantity float64, unit string) (Quantity, error) {
	normalized := normalizeUnit(unit)
	if normalized == "" {
		return Quantity{Value: quantity}, nil
	}

	def, ok := c.lookup[normalized]
	if !ok {
		return Quantity{Value: quantity, Unit: unit}, nil
	}

	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Quantity{}, errors.NewWithContext(
			errors.ErrCodeConversion,
			fmt.Sprintf("quantity for convertible unit %q must be a non-negative finite number", unit),
			map[string]any{"quantity": quantity, "unit": unit},
		)
	}

	switch def.kind {
	case KindWeight:
		return Quantity{Value: quantity * def.factor, Unit: UnitGram}, nil
	case KindVolume:
		ml := quantity * def.factor
		if ml >= volumeThresholdML {
			return Quantity{Value: ml / mlPerLiter, Unit: UnitLiter}, nil
		}
		return Quantity{Value: ml, Unit: UnitMilliliter}, nil
	default:
		return Quantity{}, errors.New(errors.ErrCodeInternal,
			fmt.Sprintf("unit %q has unknown kind %q", unit, def.kind))
	}
}

// Recognized reports whether the unit belongs to the convertible vocabulary.
func (c *Converter) Recognized(unit string) bool {
	_, ok := c.lookup[normalizeUnit(unit)]
	return ok
}

// KindOf returns the unit family of a recognized unit.
func (c *Converter) KindOf(unit string) (Kind, bool) {
	def, ok := c.lookup[normalizeUnit(unit)]
	if !ok {
		return "", false
	}
	return def.kind, true
}

// Round applies the cooking presentation rule to a quantity: values of ten
// or more round to the nearest whole number (ties away from zero), smaller
// values are truncated to two decimal places.
func Round(q float64) float64 {
	if q >= 10 {
		return math.Round(q)
	}
	return math.Floor(q*100) / 100
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
