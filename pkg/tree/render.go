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

package tree

import (
	"fmt"
	"strings"
)

// String renders the tree in its canonical text form. The format is a
// stable contract consumed by downstream tooling:
//
//	Wooden Pickaxe x1
//	|-Stick x2 (+2)
//	| \-Wood Plank x2 (+2)
//	|   \-Log x1
//	\-Wood Plank x3 (+1)
//	  \-Log x1
//
// Each line is "<name> x<requested>", with " (+n)" appended when batch
// rounding produces more than requested, and " [<byproduct> + ...]"
// appended when the node's recipe has byproducts. A node's connector is
// `\-` when it is the last child of its parent and `|-` otherwise;
// descendants of a last child indent with two spaces, all others with
// "| ".
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b, 0, true, "")
	return b.String()
}

func (n *Node) render(b *strings.Builder, level int, isLast bool, prefix string) {
	if level > 0 {
		b.WriteString(prefix)
		if isLast {
			b.WriteString(`\-`)
		} else {
			b.WriteString("|-")
		}
	}

	fmt.Fprintf(b, "%s x%d", n.Item.Name, n.Item.Quantity)

	if n.ActualQuantity != n.Item.Quantity {
		fmt.Fprintf(b, " (+%d)", n.ActualQuantity-n.Item.Quantity)
	}

	if len(n.Byproducts) > 0 {
		parts := make([]string, len(n.Byproducts))
		for i, bp := range n.Byproducts {
			parts[i] = bp.String()
		}
		fmt.Fprintf(b, " [%s]", strings.Join(parts, " + "))
	}

	childPrefix := prefix
	if level > 0 {
		if isLast {
			childPrefix += "  "
		} else {
			childPrefix += "| "
		}
	}

	for i, child := range n.Children {
		b.WriteByte('\n')
		child.render(b, level+1, i == len(n.Children)-1, childPrefix)
	}
}
