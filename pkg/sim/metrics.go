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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	simulations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forge_simulations_total",
			Help: "Total number of completed simulation runs",
		},
	)

	simulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forge_simulation_duration_seconds",
			Help:    "Duration of simulation runs in seconds",
			Buckets: []float64{.0001, .001, .01, .1, 1, 5},
		},
	)
)
