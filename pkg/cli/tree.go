/*
Copyright © 2025 Forge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/forge/pkg/recipe"
	"github.com/mchmarny/forge/pkg/serializer"
	"github.com/mchmarny/forge/pkg/tree"
)

// formatText is the canonical tree rendering, only available on the
// tree command.
const formatText = "text"

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tree",
		EnableShellCompletion: true,
		Usage:                 "Render the per-branch ingredient breakdown for an item",
		Description: `Recursively expand the requested item into its ingredient tree using
the given recipe catalog. Every branch is computed independently, so
batch-rounding overproduction stays visible at each node:

  forge tree --catalog recipes.yaml --item "Wooden Pickaxe"

  Wooden Pickaxe x1
  |-Stick x2 (+2)
  | \-Wood Plank x2 (+2)
  |   \-Log x1
  \-Wood Plank x3 (+1)
    \-Log x1

The tree can be output as canonical text (default), JSON, YAML, or table.`,
		Flags: []cli.Flag{
			catalogFlag,
			itemFlag,
			outputFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   formatText,
				Usage: fmt.Sprintf("Output format (supported values: %s)",
					strings.Join(append([]string{formatText}, serializer.SupportedFormats()...), ", ")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			items, err := parseItems(cmd.StringSlice("item"))
			if err != nil {
				return err
			}
			if len(items) != 1 {
				return fmt.Errorf("tree expects exactly one --item, got %d", len(items))
			}

			cat, err := recipe.LoadCatalogFile(cmd.String("catalog"))
			if err != nil {
				return err
			}

			node := tree.Build(items[0], cat)

			format := cmd.String("format")
			if format == formatText {
				return writeText(cmd.String("output"), node.String())
			}

			outFormat := serializer.Format(format)
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", format)
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()
			return writer.Serialize(ctx, node)
		},
	}
}

// writeText writes the canonical rendering to the given path, or stdout
// when the path is empty.
func writeText(path, text string) error {
	var out io.Writer = os.Stdout
	if strings.TrimSpace(path) != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	_, err := fmt.Fprintln(out, text)
	return err
}
