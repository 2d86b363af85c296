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
	stderrors "errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mealpantry/recipe-normalizer/pkg/errors"
	"github.com/mealpantry/recipe-normalizer/pkg/recipe"
)

// ErrDuplicateExtension is returned by Register when a parser is already
// registered for one of the offered extensions.
var ErrDuplicateExtension = stderrors.New("a parser is already registered for this extension")

// Registry maps file extensions to the parser responsible for them.
// Lookup is by case-insensitive extension. A Registry is not safe for
// concurrent registration; register all parsers before use.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Default creates a Registry with the built-in XML and YAML parsers
// registered.
func Default() *Registry {
	r := NewRegistry()
	// built-in parsers have disjoint extensions, registration cannot fail
	_ = r.Register(NewXMLParser())
	_ = r.Register(NewYAMLParser())
	return r
}

// Register adds a parser for every extension it reports. Registration is
// all-or-nothing: a duplicate extension leaves the Registry unchanged.
func (r *Registry) Register(p Parser) error {
	exts := make([]string, 0, len(p.Extensions()))
	for _, ext := range p.Extensions() {
		key := strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(key, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
		if _, exists := r.parsers[key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateExtension, key)
		}
		exts = append(exts, key)
	}
	for _, ext := range exts {
		r.parsers[ext] = p
	}
	return nil
}

// ParserFor returns the parser registered for the filename's extension.
func (r *Registry) ParserFor(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	p, ok := r.parsers[ext]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("no parser registered for extension %q", ext),
			map[string]any{"file": filename})
	}
	return p, nil
}

// Parse dispatches the file at path to the parser registered for its
// extension.
func (r *Registry) Parse(ctx context.Context, path string) (*recipe.Recipe, error) {
	p, err := r.ParserFor(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, path)
}

// SupportedExtensions returns the registered extensions in sorted order.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
