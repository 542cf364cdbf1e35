/*
Copyright © 2025 Forge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/forge/pkg/header"
	"github.com/mchmarny/forge/pkg/recipe"
	"github.com/mchmarny/forge/pkg/serializer"
)

// CatalogSummary is the serialized output of the catalog list command.
type CatalogSummary struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []CatalogEntry `json:"recipes" yaml:"recipes"`
}

// CatalogEntry summarizes one registered recipe.
type CatalogEntry struct {
	Product     string `json:"product" yaml:"product"`
	BatchSize   int    `json:"batchSize" yaml:"batchSize"`
	Ingredients int    `json:"ingredients" yaml:"ingredients"`
	Byproducts  int    `json:"byproducts,omitempty" yaml:"byproducts,omitempty"`
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Inspect recipe catalog files",
		Commands: []*cli.Command{
			catalogValidateCmd(),
			catalogListCmd(),
		},
	}
}

func catalogValidateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a recipe catalog file",
		Description: `Parse the catalog file and validate every recipe: non-empty product
names, batch sizes of at least one, and non-negative quantities. Exits
non-zero when the catalog is invalid.`,
		Flags: []cli.Flag{
			catalogFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("catalog")
			cat, err := recipe.LoadCatalogFile(path)
			if err != nil {
				return err
			}

			fmt.Printf("catalog %s is valid (%d recipes)\n", path, cat.Len())
			return nil
		},
	}
}

func catalogListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the recipes registered in a catalog file",
		Flags: []cli.Flag{
			catalogFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			cat, err := recipe.LoadCatalogFile(cmd.String("catalog"))
			if err != nil {
				return err
			}

			summary := &CatalogSummary{
				Recipes: make([]CatalogEntry, 0, cat.Len()),
			}
			summary.Init(header.KindCatalog, recipe.CatalogAPIVersion, version)

			for _, name := range cat.Names() {
				rec, ok := cat.Lookup(name)
				if !ok {
					continue
				}
				summary.Recipes = append(summary.Recipes, CatalogEntry{
					Product:     name,
					BatchSize:   rec.BatchSize(),
					Ingredients: len(rec.Ingredients),
					Byproducts:  len(rec.Byproducts),
				})
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, summary)
		},
	}
}
