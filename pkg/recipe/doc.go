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

// Package recipe defines the common recipe data model shared by all format
// parsers and the normalization pipeline.
//
// A Recipe is a named collection of Ingredients plus optional pass-through
// metadata (servings, preparation steps). Instances are constructed once per
// source file by a format parser, rewritten once by the unit conversion pass,
// then serialized and discarded.
package recipe
