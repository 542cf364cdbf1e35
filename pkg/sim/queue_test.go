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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/forge/pkg/recipe"
)

func TestQueue_LIFOOverFirstInsertion(t *testing.T) {
	q := newQueue()
	q.add("a", 1)
	q.add("b", 2)
	q.add("c", 3)

	// Re-adding to a pending name raises its quantity without moving
	// its slot.
	q.add("a", 4)

	name, qty := q.pop()
	assert.Equal(t, "c", name)
	assert.Equal(t, 3, qty)

	name, qty = q.pop()
	assert.Equal(t, "b", name)
	assert.Equal(t, 2, qty)

	name, qty = q.pop()
	assert.Equal(t, "a", name)
	assert.Equal(t, 5, qty)

	assert.True(t, q.empty())
}

func TestQueue_ReAddAfterPopTakesFreshSlot(t *testing.T) {
	q := newQueue()
	q.add("a", 1)
	q.add("b", 1)

	name, _ := q.pop()
	require.Equal(t, "b", name)

	// b was fully processed; a later demand re-enters at the end.
	q.add("b", 7)

	name, qty := q.pop()
	assert.Equal(t, "b", name)
	assert.Equal(t, 7, qty)

	name, _ = q.pop()
	assert.Equal(t, "a", name)
	assert.True(t, q.empty())
}

func TestQueue_ZeroQuantityStillClaimsSlot(t *testing.T) {
	q := newQueue()
	q.add("a", 0)

	assert.False(t, q.empty())

	name, qty := q.pop()
	assert.Equal(t, "a", name)
	assert.Equal(t, 0, qty)
}

func TestPool_FirstInsertionOrder(t *testing.T) {
	p := newPool()
	p.add("b", 2)
	p.add("a", 1)
	p.add("b", 3)

	assert.Equal(t, 5, p.get("b"))
	assert.Equal(t, 0, p.get("missing"))

	assert.Equal(t, []recipe.Item{
		recipe.NewItem("b", 5),
		recipe.NewItem("a", 1),
	}, p.items())
}

func TestPool_EntryPersistsWhenDrained(t *testing.T) {
	p := newPool()
	p.add("a", 4)
	p.sub("a", 4)

	assert.Equal(t, []recipe.Item{recipe.NewItem("a", 0)}, p.items())
}
