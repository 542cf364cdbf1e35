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

package sim

import (
	"sort"

	"github.com/mchmarny/forge/pkg/header"
	"github.com/mchmarny/forge/pkg/recipe"
)

// ResultAPIVersion is the current schema version for simulation results.
const ResultAPIVersion = "v1"

// Result holds the outcome of one simulation run.
//
// TotalCosts lists the raw materials consumed, one entry per distinct
// raw name; ExcessItems lists the surplus left unconsumed at the end,
// one entry per distinct name. Both are sorted by quantity descending,
// ties keeping the order in which names first entered that pool.
// IntermediateHistory lists the cumulative amount processed per
// craftable name, in the order names were first processed.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	TotalCosts          []recipe.Item `json:"totalCosts" yaml:"totalCosts"`
	ExcessItems         []recipe.Item `json:"excessItems" yaml:"excessItems"`
	IntermediateHistory []recipe.Item `json:"intermediateHistory" yaml:"intermediateHistory"`
}

// sortByQuantityDesc returns the items ordered by quantity descending.
// The sort is stable so equal quantities keep their relative order.
func sortByQuantityDesc(items []recipe.Item) []recipe.Item {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Quantity > items[j].Quantity
	})
	return items
}
