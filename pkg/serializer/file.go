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

package serializer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileWriter serializes to a temp file next to the target path and renames
// it into place on Close, so a crash or serialization failure never leaves
// a partial output file behind.
type FileWriter struct {
	format Format
	path   string
	tmp    *os.File
	wrote  bool
}

// NewFileWriter creates a Writer that atomically replaces the file at path
// on Close. The temp file lives in the target directory so the final rename
// stays on one filesystem.
func NewFileWriter(format Format, path string) (*FileWriter, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file in %q: %w", dir, err)
	}

	return &FileWriter{
		format: format,
		path:   path,
		tmp:    tmp,
	}, nil
}

// NewFileWriterOrStdout creates a Serializer for the given path.
// An empty path or "-" writes to stdout without the atomic commit.
// Callers should type-assert for Closer and close file-backed writers.
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		return NewStdoutWriter(format), nil
	}
	return NewFileWriter(format, trimmed)
}

// Serialize writes the data to the temp file in the configured format.
func (w *FileWriter) Serialize(ctx context.Context, data any) error {
	if w.tmp == nil {
		return fmt.Errorf("file writer for %q is closed", w.path)
	}
	if err := NewWriter(w.format, w.tmp).Serialize(ctx, data); err != nil {
		return err
	}
	w.wrote = true
	return nil
}

// Close commits the output: the temp file is synced and renamed over the
// target path. If nothing was serialized successfully, the temp file is
// removed and the target is left untouched. Close is safe to call twice.
func (w *FileWriter) Close() error {
	if w.tmp == nil {
		return nil
	}
	tmp := w.tmp
	w.tmp = nil

	if !w.wrote {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to sync output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to commit output to %q: %w", w.path, err)
	}
	return nil
}
