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

// ProcessTimes returns the number of recipe executions needed to produce
// at least minQuantity units when each execution yields batchSize units,
// i.e. ceil(minQuantity / batchSize). A minQuantity of zero needs zero
// executions. batchSize must be >= 1; a zero batch size is an invalid
// input and panics with a division fault.
func ProcessTimes(minQuantity, batchSize int) int {
	if minQuantity == 0 {
		return 0
	}
	return (minQuantity + batchSize - 1) / batchSize
}

// RequiredQuantity returns the amount actually produced when demanding
// at least minQuantity units in batches of batchSize: the smallest
// multiple of batchSize that is >= minQuantity.
func RequiredQuantity(minQuantity, batchSize int) int {
	return ProcessTimes(minQuantity, batchSize) * batchSize
}
