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

// Catalog is a name-keyed lookup table of recipes. Each recipe is keyed
// by its main product's name; registering a second recipe for the same
// name replaces the first (last registration wins). A Catalog must not
// be mutated while a tree build or simulation is reading it.
type Catalog struct {
	recipes map[string]Recipe
	names   []string
}

// NewCatalog creates a Catalog pre-populated with the given recipes.
func NewCatalog(recipes ...Recipe) *Catalog {
	c := &Catalog{
		recipes: make(map[string]Recipe, len(recipes)),
	}
	return c.AddAll(recipes)
}

// Add registers a recipe under its main product's name. If a recipe is
// already registered for that name it is replaced. Returns the catalog
// for chaining.
func (c *Catalog) Add(r Recipe) *Catalog {
	name := r.MainProduct.Name
	if _, ok := c.recipes[name]; !ok {
		c.names = append(c.names, name)
	}
	c.recipes[name] = r
	return c
}

// AddAll registers all given recipes in order. Returns the catalog for
// chaining.
func (c *Catalog) AddAll(recipes []Recipe) *Catalog {
	for _, r := range recipes {
		c.Add(r)
	}
	return c
}

// Lookup returns the recipe whose main product has the given name. The
// second return value reports whether such a recipe exists; an absent
// recipe is what classifies an item as a raw material.
func (c *Catalog) Lookup(name string) (Recipe, bool) {
	r, ok := c.recipes[name]
	if ok {
		catalogLookupHits.Inc()
	} else {
		catalogLookupMisses.Inc()
	}
	return r, ok
}

// Len returns the number of registered recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Names returns the main product names of all registered recipes in
// registration order. The returned slice is a copy.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Validate validates every registered recipe, returning the first error
// encountered in registration order.
func (c *Catalog) Validate() error {
	for _, name := range c.names {
		if err := c.recipes[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}
