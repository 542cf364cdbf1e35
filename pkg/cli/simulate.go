/*
Copyright © 2025 Forge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/forge/pkg/recipe"
	"github.com/mchmarny/forge/pkg/serializer"
	"github.com/mchmarny/forge/pkg/sim"
)

func simulateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "simulate",
		EnableShellCompletion: true,
		Usage:                 "Simulate crafting and compute consolidated total costs",
		Description: `Process the requested items through the crafting simulator. Demand for
the same item is consolidated system-wide, batch-rounding surplus is
banked and reused for later demand, and items with no recipe collect as
terminal raw material costs:

  forge simulate --catalog recipes.yaml --item "Cake=5" --item "Bucket=2"

The result contains three ledgers:
  - totalCosts: raw materials consumed, sorted by quantity descending
  - excessItems: surplus left unconsumed at the end
  - intermediateHistory: amount processed per craftable item

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			catalogFlag,
			itemFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			items, err := parseItems(cmd.StringSlice("item"))
			if err != nil {
				return err
			}

			cat, err := recipe.LoadCatalogFile(cmd.String("catalog"))
			if err != nil {
				return err
			}

			res := sim.TotalCosts(cat, items...)

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, res)
		},
	}
}
