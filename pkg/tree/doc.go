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

// Package tree builds per-branch ingredient breakdown trees.
//
// Build answers "what goes into making N of this item" recursively,
// rounding demand up to whole recipe batches at every level. Unlike the
// simulator in package sim, the tree never consolidates demand across
// branches: each occurrence of an item is expanded independently, which
// makes per-branch batch-rounding overproduction visible.
//
//	cat := recipe.NewCatalog(
//	    recipe.NewRecipe(recipe.NewItem("Wood Plank", 4), []recipe.Item{recipe.NewItem("Log", 1)}),
//	)
//	node := tree.Build(recipe.NewItem("Wood Plank", 5), cat)
//	fmt.Println(node)
//
// The canonical text rendering produced by Node.String is a stable
// contract; see its documentation for the exact format.
package tree
