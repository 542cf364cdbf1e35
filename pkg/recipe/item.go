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

import "fmt"

// Item is a named quantity of some material or product.
// The name is case-sensitive and is the item's only identity; two Item
// values are equal when both name and quantity are equal (plain ==).
// Quantities are non-negative integers.
type Item struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// NewItem creates an Item with the given name and quantity.
func NewItem(name string, quantity int) Item {
	return Item{Name: name, Quantity: quantity}
}

// String renders the item as "<name> x<quantity>".
func (i Item) String() string {
	return fmt.Sprintf("%s x%d", i.Name, i.Quantity)
}
