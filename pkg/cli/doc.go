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

// Package cli implements the command-line interface for recipe-normalizer.
//
// # Usage
//
//	recipe-normalizer <input-dir> <output-file> [flags]
//
// Converts every supported recipe file (.xml, .yaml, .yml) in input-dir into
// one normalized document at output-file, with imperial measurements
// translated to metric and recipes sorted by name in reverse alphabetical
// order. Pass "-" as the output file to write to stdout.
//
// # Flags
//
//	-v, --verbose        surface per-file and per-ingredient warnings
//	-d, --debug          debug logging with source locations
//	    --strict         abort on the first file that fails to parse
//	    --format         output format: json (default) or yaml
//	    --metrics-file   write run metrics in Prometheus text format
//	    --log-level      explicit log level (overrides -v and -d)
//	    --version        print version information
//
// # Exit Codes
//
//	0  Success, including partial success with warnings
//	1  Total failure: bad usage, unreadable input directory, unwritable
//	   output, or a run that produced no recipes
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error); takes
//	           precedence over flags
package cli
