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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog lookup metrics. A miss is not an error: unresolved names
	// are how raw materials are classified.
	catalogLookupHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forge_catalog_lookup_hits_total",
			Help: "Total number of catalog lookups that resolved to a recipe",
		},
	)
	catalogLookupMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forge_catalog_lookup_misses_total",
			Help: "Total number of catalog lookups for names with no recipe",
		},
	)

	catalogLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forge_catalog_loads_total",
			Help: "Total number of catalogs loaded from files or readers",
		},
	)
)
