// Package cli implements the command-line interface for the forge tool.
//
// # Overview
//
// The forge CLI resolves multi-step crafting chains against a recipe
// catalog: it renders per-branch ingredient breakdown trees and runs
// consolidated crafting simulations.
//
// # Commands
//
// tree - Render the ingredient breakdown for one item:
//
//	forge tree --catalog recipes.yaml --item "Wooden Pickaxe" [--format text|json|yaml|table]
//
// simulate - Compute consolidated total costs for one or more items:
//
//	forge simulate --catalog recipes.yaml --item "Cake=5" --item "Bucket=2"
//
// catalog - Inspect catalog files:
//
//	forge catalog validate --catalog recipes.yaml
//	forge catalog list --catalog recipes.yaml --format table
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Item Arguments
//
// Items are given as "Name=QTY"; the quantity defaults to 1 when
// omitted. Names are case-sensitive and may contain spaces:
//
//	--item "Wood Plank=12"
//	--item Log
//
// Repeating --item on the simulate command consolidates demand by name.
package cli
