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

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/forge/pkg/recipe"
)

func woodworkCatalog() *recipe.Catalog {
	return recipe.NewCatalog(
		recipe.NewRecipe(recipe.NewItem("Wood Plank", 4),
			[]recipe.Item{recipe.NewItem("Log", 1)}),
		recipe.NewRecipe(recipe.NewItem("Stick", 4),
			[]recipe.Item{recipe.NewItem("Wood Plank", 2)}),
		recipe.NewRecipe(recipe.NewItem("Wooden Pickaxe", 1),
			[]recipe.Item{recipe.NewItem("Stick", 2), recipe.NewItem("Wood Plank", 3)}),
	)
}

func TestBuild_Leaf(t *testing.T) {
	cat := recipe.NewCatalog()

	node := Build(recipe.NewItem("Wood Plank", 5), cat)

	assert.Equal(t, recipe.NewItem("Wood Plank", 5), node.Item)
	assert.Equal(t, 5, node.ActualQuantity, "leaf actual quantity equals the request")
	assert.Empty(t, node.Children)
	assert.Empty(t, node.Byproducts)
	assert.True(t, node.IsLeaf())
}

func TestBuild_BatchRounding(t *testing.T) {
	cat := woodworkCatalog()

	node := Build(recipe.NewItem("Wood Plank", 5), cat)

	// Demand of 5 rounds up to two batches of 4.
	assert.Equal(t, 8, node.ActualQuantity)
	require.Len(t, node.Children, 1)

	// Two executions consume two logs.
	log := node.Children[0]
	assert.Equal(t, recipe.NewItem("Log", 2), log.Item)
	assert.True(t, log.IsLeaf())
}

// Every recipe-backed node produces a multiple of its batch size; the
// same item name is expanded independently in every branch.
func TestBuild_PerBranchIndependence(t *testing.T) {
	cat := woodworkCatalog()

	node := Build(recipe.NewItem("Wooden Pickaxe", 1), cat)
	require.Len(t, node.Children, 2)

	stick := node.Children[0]
	assert.Equal(t, recipe.NewItem("Stick", 2), stick.Item)
	assert.Equal(t, 4, stick.ActualQuantity)

	plankUnderStick := stick.Children[0]
	assert.Equal(t, recipe.NewItem("Wood Plank", 2), plankUnderStick.Item)
	assert.Equal(t, 4, plankUnderStick.ActualQuantity)

	// The sibling branch computes its own Wood Plank demand with its
	// own rounding; nothing is shared with the Stick branch.
	plank := node.Children[1]
	assert.Equal(t, recipe.NewItem("Wood Plank", 3), plank.Item)
	assert.Equal(t, 4, plank.ActualQuantity)

	for _, n := range []*Node{stick, plankUnderStick, plank} {
		rec, ok := cat.Lookup(n.Item.Name)
		require.True(t, ok)
		assert.Zerof(t, n.ActualQuantity%rec.BatchSize(),
			"%s actual quantity %d not a multiple of batch size %d",
			n.Item.Name, n.ActualQuantity, rec.BatchSize())
	}
}

func TestBuild_ByproductsScaleWithProcessCount(t *testing.T) {
	cat := recipe.NewCatalog(
		recipe.NewRecipe(recipe.NewItem("Cake", 1),
			[]recipe.Item{
				recipe.NewItem("Wheat", 3),
				recipe.NewItem("Milk Bucket", 3),
			},
			recipe.NewItem("Bucket", 3)),
	)

	node := Build(recipe.NewItem("Cake", 5), cat)

	// Five executions of a batch-1 recipe.
	assert.Equal(t, 5, node.ActualQuantity)
	assert.Equal(t, []recipe.Item{recipe.NewItem("Bucket", 15)}, node.Byproducts)

	// Byproducts are informational only: children are driven purely by
	// the ingredient list.
	require.Len(t, node.Children, 2)
	assert.Equal(t, recipe.NewItem("Wheat", 15), node.Children[0].Item)
	assert.Equal(t, recipe.NewItem("Milk Bucket", 15), node.Children[1].Item)
}

func TestBuild_Deterministic(t *testing.T) {
	cat := woodworkCatalog()

	a := Build(recipe.NewItem("Wooden Pickaxe", 11), cat)
	b := Build(recipe.NewItem("Wooden Pickaxe", 11), cat)

	assert.Equal(t, a, b)
	assert.Equal(t, a.String(), b.String())
}
