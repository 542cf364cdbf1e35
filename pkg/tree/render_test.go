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

	"github.com/mchmarny/forge/pkg/recipe"
)

// The rendering format is a stable contract; these strings are verified
// character for character.
func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		cat  *recipe.Catalog
		item recipe.Item
		want string
	}{
		{
			name: "raw material only",
			cat:  recipe.NewCatalog(),
			item: recipe.NewItem("Log", 3),
			want: "Log x3",
		},
		{
			name: "single recipe with rounding",
			cat:  woodworkCatalog(),
			item: recipe.NewItem("Wood Plank", 5),
			want: "Wood Plank x5 (+3)\n" +
				`\-Log x2`,
		},
		{
			name: "nested branches with connectors",
			cat:  woodworkCatalog(),
			item: recipe.NewItem("Wooden Pickaxe", 1),
			want: "Wooden Pickaxe x1\n" +
				"|-Stick x2 (+2)\n" +
				"| \\-Wood Plank x2 (+2)\n" +
				"|   \\-Log x1\n" +
				"\\-Wood Plank x3 (+1)\n" +
				"  \\-Log x1",
		},
		{
			name: "byproducts on the node line",
			cat: recipe.NewCatalog(
				recipe.NewRecipe(recipe.NewItem("Cake", 1),
					[]recipe.Item{recipe.NewItem("Wheat", 3)},
					recipe.NewItem("Bucket", 3)),
			),
			item: recipe.NewItem("Cake", 2),
			want: "Cake x2 [Bucket x6]\n" +
				`\-Wheat x6`,
		},
		{
			name: "multiple byproducts joined with plus",
			cat: recipe.NewCatalog(
				recipe.NewRecipe(recipe.NewItem("Steel Ingot", 2),
					[]recipe.Item{recipe.NewItem("Iron Ore", 3)},
					recipe.NewItem("Slag", 1), recipe.NewItem("Ash", 2)),
			),
			item: recipe.NewItem("Steel Ingot", 3),
			want: "Steel Ingot x3 (+1) [Slag x2 + Ash x4]\n" +
				`\-Iron Ore x6`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Build(tt.item, tt.cat)
			assert.Equal(t, tt.want, node.String())
		})
	}
}
