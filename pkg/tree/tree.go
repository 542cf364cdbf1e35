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
	"github.com/mchmarny/forge/pkg/recipe"
)

// Node is one level of an ingredient breakdown. Item carries the
// quantity requested at this node; ActualQuantity is the amount actually
// produced after rounding the demand up to whole recipe batches, so it
// equals Item.Quantity for raw materials and a multiple of the batch
// size otherwise. Children hold one subtree per recipe ingredient, in
// recipe order. Byproducts are the side outputs of producing this node,
// scaled by the process count; they are informational only and never
// feed back into the breakdown.
type Node struct {
	Item           recipe.Item   `json:"item" yaml:"item"`
	ActualQuantity int           `json:"actualQuantity" yaml:"actualQuantity"`
	Children       []*Node       `json:"children,omitempty" yaml:"children,omitempty"`
	Byproducts     []recipe.Item `json:"byproducts,omitempty" yaml:"byproducts,omitempty"`
}

// Build recursively expands the requested item into its ingredient tree
// using the given catalog. Every branch is computed independently: the
// same item name occurring under two different parents is expanded twice
// with no sharing, so batch-rounding effects stay visible per branch.
//
// The catalog must be acyclic; a recipe cycle makes the recursion
// unbounded. That is a precondition violation, not a handled error.
func Build(item recipe.Item, cat *recipe.Catalog) *Node {
	treeBuilds.Inc()
	return build(item, cat)
}

func build(item recipe.Item, cat *recipe.Catalog) *Node {
	node := &Node{
		Item:           item,
		ActualQuantity: item.Quantity,
	}

	rec, ok := cat.Lookup(item.Name)
	if !ok {
		// No recipe: a raw material leaf.
		return node
	}

	times := recipe.ProcessTimes(item.Quantity, rec.BatchSize())
	node.ActualQuantity = recipe.RequiredQuantity(item.Quantity, rec.BatchSize())

	node.Children = make([]*Node, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		node.Children = append(node.Children, build(recipe.NewItem(ing.Name, ing.Quantity*times), cat))
	}

	for _, bp := range rec.Byproducts {
		node.Byproducts = append(node.Byproducts, recipe.NewItem(bp.Name, bp.Quantity*times))
	}

	return node
}

// IsLeaf reports whether the node is a raw material (no recipe, no
// children).
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
