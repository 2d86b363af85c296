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

// Package units converts imperial cooking measurements to metric.
//
// The converter recognizes two unit families: weight (normalized to grams)
// and volume (normalized to milliliters, or liters at one liter and above).
// Units outside the vocabulary pass through unchanged; conversion is the
// identity for them. Rounding is a separate, explicit step so that the
// conversion itself stays exact.
package units
