/*
Copyright © 2025 Forge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strconv"
	"strings"

	forgeerrors "github.com/mchmarny/forge/pkg/errors"
	"github.com/mchmarny/forge/pkg/recipe"
)

// parseItem parses a single "Name=QTY" argument into an Item. The
// quantity part is optional and defaults to 1. Item names are
// case-sensitive and may contain spaces and any character except '='.
func parseItem(arg string) (recipe.Item, error) {
	name, qtyStr, hasQty := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)

	if name == "" {
		return recipe.Item{}, forgeerrors.New(forgeerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid item %q: empty name", arg))
	}

	if !hasQty {
		return recipe.NewItem(name, 1), nil
	}

	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil {
		return recipe.Item{}, forgeerrors.Wrap(forgeerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid item %q: quantity is not an integer", arg), err)
	}
	if qty < 0 {
		return recipe.Item{}, forgeerrors.New(forgeerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid item %q: quantity must be non-negative", arg))
	}

	return recipe.NewItem(name, qty), nil
}

// parseItems parses repeated --item arguments.
func parseItems(args []string) ([]recipe.Item, error) {
	items := make([]recipe.Item, 0, len(args))
	for _, arg := range args {
		item, err := parseItem(arg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
