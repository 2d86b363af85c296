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

// Package normalizer orchestrates a recipe normalization run: it enumerates
// the input directory, dispatches each file to the parser registered for its
// extension, converts ingredient measurements to metric, sorts the collected
// recipes reverse-alphabetically by name, and writes a single JSON (or YAML)
// document atomically.
//
// Per-file and per-ingredient failures are downgraded to warnings so one bad
// file never aborts the run; only environment-level I/O failures (unreadable
// input directory, unwritable output) and runs that produce zero recipes are
// fatal. Each run is stateless and single-threaded.
package normalizer
