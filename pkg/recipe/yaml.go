// Copyright (c) 2025, Forge Authors.  All rights reserved.
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

package recipe

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	forgeerrors "github.com/mchmarny/forge/pkg/errors"
	"github.com/mchmarny/forge/pkg/header"
)

// CatalogAPIVersion is the current schema version for catalog files.
const CatalogAPIVersion = "v1"

// itemSpec is the file schema for an item. Quantity is a pointer so an
// omitted quantity defaults to 1 instead of 0.
type itemSpec struct {
	Name     string `json:"name" yaml:"name"`
	Quantity *int   `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

func (s itemSpec) item() Item {
	q := 1
	if s.Quantity != nil {
		q = *s.Quantity
	}
	return Item{Name: s.Name, Quantity: q}
}

// recipeSpec is the file schema for a single recipe entry.
type recipeSpec struct {
	Product     itemSpec   `json:"product" yaml:"product"`
	Ingredients []itemSpec `json:"ingredients" yaml:"ingredients"`
	Byproducts  []itemSpec `json:"byproducts,omitempty" yaml:"byproducts,omitempty"`
}

// CatalogFile is the on-disk representation of a recipe catalog.
type CatalogFile struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []recipeSpec `json:"recipes" yaml:"recipes"`
}

// LoadCatalog reads a YAML catalog document from r, validates every
// recipe, and returns the populated Catalog. Recipes are registered in
// document order, so a duplicate product name later in the file wins.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, forgeerrors.Wrap(forgeerrors.ErrCodeInvalidRequest, "failed to parse catalog document", err)
	}

	if file.APIVersion != "" && file.APIVersion != CatalogAPIVersion {
		return nil, forgeerrors.New(forgeerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported catalog apiVersion: %q", file.APIVersion))
	}

	if file.Kind != "" && file.Kind != header.KindCatalog {
		return nil, forgeerrors.New(forgeerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected document kind: %q", file.Kind))
	}

	cat := NewCatalog()
	for i, spec := range file.Recipes {
		rec := Recipe{
			MainProduct: spec.Product.item(),
			Ingredients: make([]Item, 0, len(spec.Ingredients)),
		}
		for _, ing := range spec.Ingredients {
			rec.Ingredients = append(rec.Ingredients, ing.item())
		}
		for _, bp := range spec.Byproducts {
			rec.Byproducts = append(rec.Byproducts, bp.item())
		}

		if err := rec.Validate(); err != nil {
			return nil, forgeerrors.WrapWithContext(
				forgeerrors.ErrCodeInvalidRecipe,
				fmt.Sprintf("invalid recipe at index %d", i),
				err,
				map[string]any{"index": i, "product": rec.MainProduct.Name},
			)
		}

		cat.Add(rec)
	}

	catalogLoaded.Inc()
	slog.Debug("catalog loaded", "recipes", cat.Len())

	return cat, nil
}

// LoadCatalogFile loads a YAML catalog from the given file path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, forgeerrors.Wrap(forgeerrors.ErrCodeNotFound,
			fmt.Sprintf("failed to open catalog file %q", path), err)
	}
	defer f.Close()

	cat, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", path, err)
	}
	return cat, nil
}
