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
	"log/slog"
	"time"

	"github.com/mchmarny/forge/pkg/header"
	"github.com/mchmarny/forge/pkg/recipe"
)

// TotalCosts simulates crafting the requested items against the catalog
// and returns the consolidated raw material costs, leftover surplus,
// and per-item processing history.
//
// Unlike tree.Build, demand for the same name is consolidated
// system-wide: requested items are merged into a single work queue by
// name, and batch-rounding surplus banked by one pass offsets demand in
// later passes for the same name. Processing pops the most recently
// slotted pending name (LIFO over first-insertion order of distinct
// names), which makes the run fully deterministic.
//
// All state is scoped to this call; the catalog is only read. The
// catalog must be acyclic and every batch size must be >= 1 or the
// simulation does not terminate.
func TotalCosts(cat *recipe.Catalog, items ...recipe.Item) *Result {
	start := time.Now()
	defer func() {
		simulationDuration.Observe(time.Since(start).Seconds())
	}()

	totals := newPool()
	excess := newPool()
	history := newPool()
	work := newQueue()

	// Seed: merge requested items by name.
	for _, it := range items {
		work.add(it.Name, it.Quantity)
	}

	for !work.empty() {
		name, quantity := work.pop()

		rec, ok := cat.Lookup(name)
		if !ok {
			// Terminal raw material.
			totals.add(name, quantity)
			continue
		}

		batch := rec.BatchSize()

		// Consume banked surplus one whole batch at a time: each
		// iteration removes one batch from both the surplus pool and
		// the outstanding demand.
		for excess.get(name) >= batch && quantity >= batch {
			excess.sub(name, batch)
			quantity -= batch
		}

		times := recipe.ProcessTimes(quantity, batch)
		actual := recipe.RequiredQuantity(quantity, batch)

		for _, ing := range rec.Ingredients {
			work.add(ing.Name, ing.Quantity*times)
		}

		for _, bp := range rec.Byproducts {
			excess.add(bp.Name, bp.Quantity*times)
		}

		history.add(name, quantity)

		// Bank batch-rounding overproduction for future demand.
		if actual > quantity {
			excess.add(name, actual-quantity)
		}
	}

	res := &Result{
		TotalCosts:          sortByQuantityDesc(totals.items()),
		ExcessItems:         sortByQuantityDesc(excess.items()),
		IntermediateHistory: history.items(),
	}
	res.Init(header.KindSimulationResult, ResultAPIVersion, "")

	simulations.Inc()
	slog.Debug("simulation complete",
		"requested", len(items),
		"rawMaterials", len(res.TotalCosts),
		"excess", len(res.ExcessItems),
		"intermediates", len(res.IntermediateHistory))

	return res
}
