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

import "github.com/mchmarny/forge/pkg/recipe"

// queue is the simulator's work queue: an insertion-ordered set of
// distinct pending names with a quantity per name and LIFO pop.
//
// A name gets a slot the first time it is added while not pending;
// further adds only raise its pending quantity without moving the slot.
// Pop removes the most recently slotted pending name. Once popped, a
// later add for the same name takes a fresh slot at the end, so the
// name is processed again as an independent pass.
type queue struct {
	// slots holds the currently pending names in slot order; the tail
	// is always the next to pop.
	slots   []string
	pending map[string]int
}

func newQueue() *queue {
	return &queue{
		pending: make(map[string]int),
	}
}

// add merges quantity into the name's pending demand, assigning a new
// slot if the name is not currently pending. Zero quantities still
// claim a slot: discovering a demand and sizing it are separate facts.
func (q *queue) add(name string, quantity int) {
	if _, ok := q.pending[name]; !ok {
		q.slots = append(q.slots, name)
	}
	q.pending[name] += quantity
}

func (q *queue) empty() bool {
	return len(q.slots) == 0
}

// pop removes and returns the most recently slotted pending name along
// with its accumulated quantity. Callers must check empty first.
func (q *queue) pop() (string, int) {
	last := len(q.slots) - 1
	name := q.slots[last]
	q.slots = q.slots[:last]

	quantity := q.pending[name]
	delete(q.pending, name)

	return name, quantity
}

// pool is a name-keyed quantity accumulator that remembers the order in
// which distinct names were first inserted. The simulator uses one pool
// each for total costs, banked excess, and intermediate history, all
// scoped to a single simulation call.
type pool struct {
	quantities map[string]int
	names      []string
}

func newPool() *pool {
	return &pool{
		quantities: make(map[string]int),
	}
}

// add merges quantity into the named entry, creating it if absent. An
// entry persists once created, even if later drained back to zero.
func (p *pool) add(name string, quantity int) {
	if _, ok := p.quantities[name]; !ok {
		p.names = append(p.names, name)
	}
	p.quantities[name] += quantity
}

// get returns the accumulated quantity for the name, zero if absent.
func (p *pool) get(name string) int {
	return p.quantities[name]
}

// sub removes quantity from an existing entry.
func (p *pool) sub(name string, quantity int) {
	p.quantities[name] -= quantity
}

// items returns the pool's entries as Items in first-insertion order.
// The result is never nil.
func (p *pool) items() []recipe.Item {
	out := make([]recipe.Item, 0, len(p.names))
	for _, name := range p.names {
		out = append(out, recipe.NewItem(name, p.quantities[name]))
	}
	return out
}
