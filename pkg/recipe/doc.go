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

// Package recipe defines the crafting data model shared by the
// resolution engines: items, batch recipes, the name-keyed recipe
// catalog, and the batch arithmetic both engines depend on.
//
// # Data Model
//
// An Item is a named non-negative quantity. A Recipe turns a fixed
// batch of ingredient Items into a fixed batch of its main product; the
// main product's quantity is the batch size. Recipes may declare
// byproducts, side outputs of each execution. A Catalog maps a product
// name to at most one Recipe; a name with no recipe is a raw material.
//
// # Batch Arithmetic
//
// ProcessTimes and RequiredQuantity answer the two questions every
// resolution asks: how many times must a recipe run to cover a demand,
// and how many units does that actually produce:
//
//	recipe.ProcessTimes(5, 4)     // 2 executions
//	recipe.RequiredQuantity(5, 4) // 8 units produced
//
// # Catalog Files
//
// Catalogs load from YAML documents:
//
//	apiVersion: v1
//	kind: Catalog
//	recipes:
//	  - product: {name: Wood Plank, quantity: 4}
//	    ingredients:
//	      - {name: Log}
//
// An omitted quantity defaults to 1. Every recipe is validated on load;
// a batch size below one is rejected because the engines assume it.
package recipe
