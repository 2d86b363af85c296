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
	"fmt"
	"os"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
	"github.com/mealpantry/recipe-normalizer/pkg/recipe"
)

// Parser decodes one recipe document format into the common model.
// Implementations report the file extensions they handle and must be safe
// for repeated use across files.
type Parser interface {
	// Parse reads and decodes the recipe file at path.
	Parse(ctx context.Context, path string) (*recipe.Recipe, error)
	// Extensions returns the file extensions this parser handles,
	// each with a leading dot (e.g. ".xml").
	Extensions() []string
}

// DefaultMaxFileSize is the maximum recipe document size accepted by the
// built-in parsers (1MB). Recipe files are small; anything larger is
// almost certainly not a recipe.
const DefaultMaxFileSize = 1 << 20

// Option configures a format parser.
type Option func(*settings)

type settings struct {
	maxSize int64
}

func newSettings(opts ...Option) settings {
	s := settings{maxSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMaxFileSize sets the maximum accepted document size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(s *settings) {
		s.maxSize = size
	}
}

// readDocument loads a recipe file, honoring context cancellation and the
// configured size limit. Unreadable files are I/O failures; oversized files
// are parse failures attributed to the document itself.
func readDocument(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("cannot read recipe file %q", path), err)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeIO,
			fmt.Sprintf("recipe path %q is a directory", path))
	}
	if info.Size() > maxSize {
		return nil, errors.New(errors.ErrCodeParse,
			fmt.Sprintf("recipe file too large (%d bytes, max %d): %s", info.Size(), maxSize, path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("cannot read recipe file %q", path), err)
	}
	return data, nil
}
