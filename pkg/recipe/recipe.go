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

	forgeerrors "github.com/mchmarny/forge/pkg/errors"
)

// Recipe turns a fixed batch of ingredients into a fixed batch of its
// main product, plus optional byproducts. The main product's quantity
// is the batch size: one execution of the recipe consumes every
// ingredient quantity once and yields exactly that many units of the
// product. A recipe is keyed by its main product's name in a Catalog.
type Recipe struct {
	MainProduct Item   `json:"product" yaml:"product"`
	Ingredients []Item `json:"ingredients" yaml:"ingredients"`
	Byproducts  []Item `json:"byproducts,omitempty" yaml:"byproducts,omitempty"`
}

// NewRecipe creates a Recipe for the given main product and ingredients.
func NewRecipe(mainProduct Item, ingredients []Item, byproducts ...Item) Recipe {
	return Recipe{
		MainProduct: mainProduct,
		Ingredients: ingredients,
		Byproducts:  byproducts,
	}
}

// BatchSize returns the number of units of the main product yielded by
// one execution of the recipe.
func (r Recipe) BatchSize() int {
	return r.MainProduct.Quantity
}

// Validate performs structural validation of the recipe. The resolution
// engines assume valid recipes; a batch size below one in particular
// leads to undefined behavior, so callers constructing recipes from
// untrusted input must validate first.
func (r Recipe) Validate() error {
	if r.MainProduct.Name == "" {
		return forgeerrors.New(forgeerrors.ErrCodeInvalidRecipe, "recipe main product has empty name")
	}

	if r.BatchSize() < 1 {
		return forgeerrors.NewWithContext(
			forgeerrors.ErrCodeInvalidRecipe,
			fmt.Sprintf("recipe for %q has batch size %d, must be >= 1", r.MainProduct.Name, r.BatchSize()),
			map[string]any{"product": r.MainProduct.Name, "batchSize": r.BatchSize()},
		)
	}

	for i, ing := range r.Ingredients {
		if ing.Name == "" {
			return forgeerrors.NewWithContext(
				forgeerrors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe for %q has ingredient with empty name at index %d", r.MainProduct.Name, i),
				map[string]any{"product": r.MainProduct.Name, "index": i},
			)
		}
		if ing.Quantity < 0 {
			return forgeerrors.NewWithContext(
				forgeerrors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe for %q has negative quantity for ingredient %q", r.MainProduct.Name, ing.Name),
				map[string]any{"product": r.MainProduct.Name, "ingredient": ing.Name},
			)
		}
	}

	for i, bp := range r.Byproducts {
		if bp.Name == "" {
			return forgeerrors.NewWithContext(
				forgeerrors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe for %q has byproduct with empty name at index %d", r.MainProduct.Name, i),
				map[string]any{"product": r.MainProduct.Name, "index": i},
			)
		}
		if bp.Quantity < 0 {
			return forgeerrors.NewWithContext(
				forgeerrors.ErrCodeInvalidRecipe,
				fmt.Sprintf("recipe for %q has negative quantity for byproduct %q", r.MainProduct.Name, bp.Name),
				map[string]any{"product": r.MainProduct.Name, "byproduct": bp.Name},
			)
		}
	}

	return nil
}
