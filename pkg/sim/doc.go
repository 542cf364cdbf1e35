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

// Package sim simulates multi-step crafting to answer "how much of
// everything is needed, and what is left over".
//
// The simulator processes a work queue of demands. Identical names are
// consolidated system-wide, batch-rounding surplus is banked and reused
// to offset later demand for the same item, and names with no recipe
// collect as terminal raw material costs:
//
//	res := sim.TotalCosts(cat, recipe.NewItem("Cake", 5))
//	for _, cost := range res.TotalCosts {
//	    fmt.Println(cost) // e.g. "Wheat x15"
//	}
//
// A single name can be processed more than once: demand discovered after
// the name left the queue is queued again and runs as an independent
// pass, drawing on any surplus earlier passes banked. The run is fully
// deterministic for a given catalog and request.
package sim
