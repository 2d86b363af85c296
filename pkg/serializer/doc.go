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

// Package serializer writes normalized recipe data to files or stdout.
//
// The package supports two output formats:
//   - JSON: tab-indented, machine-readable (the default)
//   - YAML: human-readable
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatJSON, "out.json")
//	if err != nil {
//		return err
//	}
//	defer writer.Close() // Important: Close commits the atomic rename
//	if err := writer.Serialize(ctx, recipes); err != nil {
//		return err
//	}
//
// File output is atomic: data is written to a temp file in the target
// directory and renamed into place on Close, so readers never observe a
// partially written output file.
package serializer
