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

// Package parser decodes recipe documents into the common recipe model.
//
// Each format parser is responsible only for structural decoding; unit
// conversion happens later in the pipeline. Parsers are registered in a
// Registry keyed by case-insensitive file extension, so adding a format
// means registering one more parser and touching nothing else.
//
// The built-in parsers cover XML (.xml) and YAML (.yaml, .yml) documents.
package parser
