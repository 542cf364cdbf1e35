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

// Package header provides common header types for forge data structures.
//
// This package defines the Header type used across catalogs, simulation
// results, and other forge data structures to provide consistent metadata
// and versioning information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata,
// following Kubernetes-style resource conventions:
//
//	{
//	  "apiVersion": "v1",
//	  "kind": "Catalog",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # Kind Field
//
// The Kind field identifies the resource type:
//   - Catalog: A named set of crafting recipes
//   - IngredientTree: Per-branch ingredient breakdown of a request
//   - SimulationResult: Consolidated cost/excess/history of a simulation
//
// # API Versioning
//
// The APIVersion field enables evolution of data formats. Tools should
// check APIVersion before parsing:
//
//	if header.APIVersion != "v1" {
//	    return fmt.Errorf("unsupported API version: %s", header.APIVersion)
//	}
package header
